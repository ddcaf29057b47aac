package fixedBookingRepo

import (
	"context"
	"fmt"
	"time"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFixedBookingRepo implements FixedBookingRepository using MongoDB.
type MongoFixedBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoFixedBookingRepo creates a new instance of FixedBookingRepository using MongoDB.
func NewMongoFixedBookingRepo() FixedBookingRepository {
	repo := &MongoFixedBookingRepo{coll: database.Collection("fixedBookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create fixed booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFixedBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "coachId", Value: 1}, {Key: "weekday", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "studentId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoFixedBookingRepo) GetByID(ctx context.Context, id string) (*models.FixedBooking, error) {
	var fb models.FixedBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&fb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch fixed booking with id %s: %w", id, err)
	}
	return &fb, nil
}

func (r *MongoFixedBookingRepo) List(ctx context.Context, filter models.FixedBookingFilter) ([]models.FixedBooking, error) {
	query := bson.M{}
	if filter.CoachID != "" {
		query["coachId"] = filter.CoachID
	}
	if filter.StudentID != "" {
		query["studentId"] = filter.StudentID
	}
	if filter.Weekday != nil {
		query["weekday"] = *filter.Weekday
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.FixedBooking
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode fixed bookings: %w", err)
	}
	return templates, nil
}

func (r *MongoFixedBookingRepo) Create(ctx context.Context, fb *models.FixedBooking) error {
	now := time.Now()
	fb.CreatedAt = now
	fb.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, fb); err != nil {
		return fmt.Errorf("failed to create fixed booking: %w", err)
	}
	return nil
}

func (r *MongoFixedBookingRepo) Update(ctx context.Context, fb *models.FixedBooking) error {
	fb.UpdatedAt = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": fb.ID}, bson.M{"$set": fb})
	if err != nil {
		return fmt.Errorf("failed to update fixed booking with id %s: %w", fb.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("fixed booking with id %s not found", fb.ID)
	}
	return nil
}

func (r *MongoFixedBookingRepo) SetStatus(ctx context.Context, id string, status int) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set status for fixed booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("fixed booking with id %s not found", id)
	}
	return nil
}

func (r *MongoFixedBookingRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete fixed booking with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("fixed booking with id %s not found", id)
	}
	return nil
}
