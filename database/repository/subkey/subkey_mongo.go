// File: database/repository/subkey/subkey_mongo.go
package subkeyRepo

import (
	"context"
	"fmt"
	"time"

	"oncall/database"
	"oncall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubKeyRepo implements SubscriptionKeyRepository using MongoDB.
type MongoSubKeyRepo struct {
	coll *mongo.Collection
}

// NewMongoSubKeyRepo creates a new instance of SubscriptionKeyRepository using MongoDB.
func NewMongoSubKeyRepo() SubscriptionKeyRepository {
	coll := database.Collection("subscription_keys")
	repo := &MongoSubKeyRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSubKeyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByKey retrieves a key record by its key string. Returns nil, nil when no
// record matches.
func (r *MongoSubKeyRepo) GetByKey(key string) (*models.SubscriptionKey, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rec models.SubscriptionKey
	if err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subscription key: %w", err)
	}
	return &rec, nil
}

// GetByUserID retrieves all key records owned by a user.
func (r *MongoSubKeyRepo) GetByUserID(userID string) ([]models.SubscriptionKey, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscription keys for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var keys []models.SubscriptionKey
	for cursor.Next(ctx) {
		var k models.SubscriptionKey
		if err := cursor.Decode(&k); err != nil {
			return nil, fmt.Errorf("failed to decode subscription key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Create inserts a new key document.
func (r *MongoSubKeyRepo) Create(key *models.SubscriptionKey) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	key.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, key); err != nil {
		return fmt.Errorf("failed to create subscription key: %w", err)
	}
	return nil
}

// Revoke marks a key document as revoked.
func (r *MongoSubKeyRepo) Revoke(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"revoked": true}})
	if err != nil {
		return fmt.Errorf("failed to revoke subscription key %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("subscription key with id %s not found", id)
	}
	return nil
}
