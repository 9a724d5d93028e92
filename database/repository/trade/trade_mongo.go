package tradeRepo

import (
	"context"
	"fmt"
	"time"

	"niryaat/config"
	"niryaat/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTradeRepo implements TradeRepository using MongoDB.
type MongoTradeRepo struct {
	schemes   *mongo.Collection
	news      *mongo.Collection
	tariffs   *mongo.Collection
	products  *mongo.Collection
	stats     *mongo.Collection
	relations *mongo.Collection
}

// NewMongoTradeRepo creates a new instance of TradeRepository using MongoDB.
func NewMongoTradeRepo() TradeRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoTradeRepo{
		schemes:   db.Collection("schemes"),
		news:      db.Collection("news"),
		tariffs:   db.Collection("tariffs"),
		products:  db.Collection("products"),
		stats:     db.Collection("trade_stats"),
		relations: db.Collection("country_relations"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTradeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// (hs_code, country) is the tariff point-lookup key and must be unique.
	_, err := r.tariffs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hs_code", Value: 1}, {Key: "country", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create tariff index: %w", err)
	}

	_, err = r.stats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "hs_code", Value: 1}, {Key: "year", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create trade stats index: %w", err)
	}
	return nil
}
