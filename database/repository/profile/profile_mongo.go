package profileRepo

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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "iec_code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByAccountID retrieves the profile attached to an account.
func (r *MongoProfileRepo) GetByAccountID(accountID string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"account_id": accountID}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for account %s: %w", accountID, err)
	}
	return &prof, nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the update document.
func (r *MongoProfileRepo) Update(accountID string, update models.ProfileUpdate) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if update.FullName != nil {
		set["full_name"] = *update.FullName
	}
	if update.CompanyName != nil {
		set["company_name"] = *update.CompanyName
	}
	if update.Country != nil {
		set["country"] = *update.Country
	}
	if update.PhoneNumber != nil {
		set["phone_number"] = *update.PhoneNumber
	}

	filter := bson.M{"account_id": accountID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile for account %s: %w", accountID, err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("profile for account %s not found", accountID)
	}
	return r.GetByAccountID(accountID)
}

// SetApproval flips the approval flag for an account's profile.
func (r *MongoProfileRepo) SetApproval(accountID string, approved bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"account_id": accountID}
	update := bson.M{"$set": bson.M{"is_approved": approved, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set approval for account %s: %w", accountID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile for account %s not found", accountID)
	}
	return nil
}

// AddHSCode adds a tracked HS code via $addToSet to keep the set unique.
func (r *MongoProfileRepo) AddHSCode(accountID, hsCode string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"account_id": accountID}
	update := bson.M{
		"$addToSet": bson.M{"hs_codes": hsCode},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to add hs code for account %s: %w", accountID, err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("profile for account %s not found", accountID)
	}
	return r.GetByAccountID(accountID)
}

// RemoveHSCode removes a tracked HS code via $pull.
func (r *MongoProfileRepo) RemoveHSCode(accountID, hsCode string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"account_id": accountID}
	update := bson.M{
		"$pull": bson.M{"hs_codes": hsCode},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to remove hs code for account %s: %w", accountID, err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("profile for account %s not found", accountID)
	}
	return r.GetByAccountID(accountID)
}
