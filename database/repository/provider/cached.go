package providerRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"glowbook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const approvedProvidersKey = "providers:approved"

// CachedProviderRepo serves the approved catalogue from Redis and falls back
// to the wrapped repository on a miss or a cache failure.
type CachedProviderRepo struct {
	inner  ProviderRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProviderRepo wraps inner with a Redis read-through cache.
func NewCachedProviderRepo(inner ProviderRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) ProviderRepository {
	if cache == nil || ttl <= 0 {
		return inner
	}
	return &CachedProviderRepo{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

// GetByUserID is not cached; admission must see the current capacity.
func (r *CachedProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	return r.inner.GetByUserID(ctx, userID)
}

// GetApproved returns the cached catalogue when present.
func (r *CachedProviderRepo) GetApproved(ctx context.Context) ([]models.Provider, error) {
	raw, err := r.cache.Get(ctx, approvedProvidersKey).Bytes()
	switch {
	case err == nil:
		var providers []models.Provider
		if jsonErr := json.Unmarshal(raw, &providers); jsonErr == nil {
			return providers, nil
		}
		r.logger.Warn("discarding unreadable provider cache entry")
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("provider cache read failed", zap.Error(err))
	}

	providers, err := r.inner.GetApproved(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(providers); err == nil {
		if err := r.cache.Set(ctx, approvedProvidersKey, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("provider cache write failed", zap.Error(err))
		}
	}
	return providers, nil
}
