package tradeRepo

import (
	"fmt"
	"time"

	"niryaat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListSchemes retrieves all active schemes, newest first.
func (r *MongoTradeRepo) ListSchemes() ([]models.Scheme, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.schemes.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve schemes: %w", err)
	}
	defer cursor.Close(ctx)

	var schemes []models.Scheme
	for cursor.Next(ctx) {
		var s models.Scheme
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode scheme: %w", err)
		}
		schemes = append(schemes, s)
	}
	return schemes, nil
}

// ListNews retrieves the latest news entries, newest first.
func (r *MongoTradeRepo) ListNews(limit int64) ([]models.NewsItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.news.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve news: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.NewsItem
	for cursor.Next(ctx) {
		var n models.NewsItem
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode news item: %w", err)
		}
		items = append(items, n)
	}
	return items, nil
}

// LookupTariff retrieves the tariff record for the exact (hsCode, country) key.
func (r *MongoTradeRepo) LookupTariff(hsCode, country string) (*models.Tariff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Tariff
	filter := bson.M{"hs_code": hsCode, "country": country}
	if err := r.tariffs.FindOne(ctx, filter).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tariff for %s/%s: %w", hsCode, country, err)
	}
	return &t, nil
}

// ListProducts retrieves all market-intel products.
func (r *MongoTradeRepo) ListProducts() ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "product_name", Value: 1}})
	cursor, err := r.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// TradeStats retrieves yearly statistics for an HS code, oldest first.
func (r *MongoTradeRepo) TradeStats(hsCode string) ([]models.TradeStat, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}})
	cursor, err := r.stats.Find(ctx, bson.M{"hs_code": hsCode}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trade stats for %s: %w", hsCode, err)
	}
	defer cursor.Close(ctx)

	var stats []models.TradeStat
	for cursor.Next(ctx) {
		var st models.TradeStat
		if err := cursor.Decode(&st); err != nil {
			return nil, fmt.Errorf("failed to decode trade stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, nil
}

// ListCountryRelations retrieves all country relations sorted by name.
func (r *MongoTradeRepo) ListCountryRelations() ([]models.CountryRelation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "country_name", Value: 1}})
	cursor, err := r.relations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve country relations: %w", err)
	}
	defer cursor.Close(ctx)

	var relations []models.CountryRelation
	for cursor.Next(ctx) {
		var rel models.CountryRelation
		if err := cursor.Decode(&rel); err != nil {
			return nil, fmt.Errorf("failed to decode country relation: %w", err)
		}
		relations = append(relations, rel)
	}
	return relations, nil
}
