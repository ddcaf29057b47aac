package coachRepo

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

// MongoCoachRepo implements CoachRepository using MongoDB.
type MongoCoachRepo struct {
	coll *mongo.Collection
}

// NewMongoCoachRepo creates a new instance of CoachRepository using MongoDB.
func NewMongoCoachRepo() CoachRepository {
	repo := &MongoCoachRepo{coll: database.Collection("coaches")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create coach indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCoachRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCoachRepo) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	var coach models.Coach
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&coach); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coach with id %s: %w", id, err)
	}
	return &coach, nil
}

func (r *MongoCoachRepo) GetByUserID(ctx context.Context, userID string) (*models.Coach, error) {
	var coach models.Coach
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&coach); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coach for user %s: %w", userID, err)
	}
	return &coach, nil
}

func (r *MongoCoachRepo) List(ctx context.Context, status *int) ([]models.Coach, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	defer cursor.Close(ctx)

	var coaches []models.Coach
	if err := cursor.All(ctx, &coaches); err != nil {
		return nil, fmt.Errorf("failed to decode coaches: %w", err)
	}
	return coaches, nil
}

func (r *MongoCoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	now := time.Now()
	coach.CreatedAt = now
	coach.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, coach); err != nil {
		return fmt.Errorf("failed to create coach: %w", err)
	}
	return nil
}

func (r *MongoCoachRepo) Update(ctx context.Context, coach *models.Coach) error {
	coach.UpdatedAt = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": coach.ID}, bson.M{"$set": coach})
	if err != nil {
		return fmt.Errorf("failed to update coach with id %s: %w", coach.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coach with id %s not found", coach.ID)
	}
	return nil
}

func (r *MongoCoachRepo) ReplaceSchedule(ctx context.Context, coachID string, schedule *models.Schedule) error {
	update := bson.M{"$set": bson.M{"schedule": schedule, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": coachID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace schedule for coach %s: %w", coachID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coach with id %s not found", coachID)
	}
	return nil
}

func (r *MongoCoachRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coach with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("coach with id %s not found", id)
	}
	return nil
}
