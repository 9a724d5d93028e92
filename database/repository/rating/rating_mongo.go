package ratingRepo

import (
	"context"
	"fmt"
	"time"

	"niryaat/config"
	"niryaat/database"
	"niryaat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRatingRepo implements RatingRepository using MongoDB.
type MongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo creates a new instance of RatingRepository using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("importer_ratings")
	repo := &MongoRatingRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "importer_name", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new rating document.
func (r *MongoRatingRepo) Create(rating *models.ImporterRating) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, rating); err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// List retrieves ratings newest first, optionally narrowed to one importer.
func (r *MongoRatingRepo) List(importerName string) ([]models.ImporterRating, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if importerName != "" {
		filter["importer_name"] = importerName
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.ImporterRating
	for cursor.Next(ctx) {
		var rating models.ImporterRating
		if err := cursor.Decode(&rating); err != nil {
			return nil, fmt.Errorf("failed to decode rating: %w", err)
		}
		items = append(items, rating)
	}
	return items, nil
}
