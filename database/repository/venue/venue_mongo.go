package venueRepo

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

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a new instance of VenueRepository using MongoDB.
func NewMongoVenueRepo() VenueRepository {
	repo := &MongoVenueRepo{coll: database.Collection("venues")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create venue indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVenueRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

func (r *MongoVenueRepo) List(ctx context.Context, status *int) ([]models.Venue, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

func (r *MongoVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

func (r *MongoVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	venue.UpdatedAt = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": venue.ID}, bson.M{"$set": venue})
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", venue.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue with id %s not found", venue.ID)
	}
	return nil
}

func (r *MongoVenueRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete venue with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("venue with id %s not found", id)
	}
	return nil
}
