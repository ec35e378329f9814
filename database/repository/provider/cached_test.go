package providerRepo_test

import (
	"context"
	"testing"
	"time"

	"glowbook/database/repository/memory"
	providerRepo "glowbook/database/repository/provider"
	"glowbook/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCachedProviderRepoFallsBackWhenRedisIsDown(t *testing.T) {
	inner := memory.NewProviderStore(
		models.Provider{ID: "p1", UserID: "owner-1", Status: models.ProviderStatusApproved},
		models.Provider{ID: "p2", UserID: "owner-2", Status: "pending"},
	)
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	repo := providerRepo.NewCachedProviderRepo(inner, client, time.Minute, zap.NewNop())

	got, err := repo.GetApproved(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	p, err := repo.GetByUserID(context.Background(), "owner-2")
	require.NoError(t, err)
	assert.Equal(t, "p2", p.ID)
}

func TestNewCachedProviderRepoWithoutCacheReturnsInner(t *testing.T) {
	inner := memory.NewProviderStore()
	assert.Same(t, inner, providerRepo.NewCachedProviderRepo(inner, nil, time.Minute, zap.NewNop()))
}
