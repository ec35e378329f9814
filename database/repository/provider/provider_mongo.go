package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo(db *mongo.Database) ProviderRepository {
	repo := &MongoProviderRepo{coll: db.Collection("artists")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetByUserID retrieves a provider by its owner user id.
func (r *MongoProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider for user %s: %w", userID, err)
	}
	return &provider, nil
}

// GetApproved retrieves all approved providers.
func (r *MongoProviderRepo) GetApproved(ctx context.Context) ([]models.Provider, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": models.ProviderStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve approved providers: %w", err)
	}
	defer cursor.Close(ctx)

	providers := []models.Provider{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}
