//go:build integration

package schedulerRepo_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	schedulerRepo "glowbook/database/repository/scheduler"
	"glowbook/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errFull = errors.New("slot full")

// Transactions need a replica set, e.g. mongodb://localhost:27017/?replicaSet=rs0.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("glowbook_test_" + uuid.NewString()[:8])
	require.NoError(t, db.CreateCollection(ctx, "slot_locks"))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func capacity(n int) schedulerRepo.SlotCheck {
	return func(existing []models.Booking) error {
		if len(existing) >= n {
			return errFull
		}
		return nil
	}
}

func newBooking(userID string) *models.Booking {
	return &models.Booking{
		ID:        uuid.NewString(),
		ArtistID:  "artist-1",
		UserID:    userID,
		Category:  "bridal",
		Date:      "2026-10-25",
		TimeRange: "9:00 AM - 12:00 PM",
		Status:    models.StatusInProgress,
		CreatedAt: time.Now().UTC(),
	}
}

func TestReserveSlotRespectsCapacity(t *testing.T) {
	repo := schedulerRepo.NewMongoSchedulerRepo(testDatabase(t))
	ctx := context.Background()

	require.NoError(t, repo.ReserveSlot(ctx, newBooking("u1"), capacity(1)))
	assert.ErrorIs(t, repo.ReserveSlot(ctx, newBooking("u2"), capacity(1)), errFull)

	got, err := repo.FindByArtistAndDate(ctx, "artist-1", "2026-10-25", models.ActiveStatuses)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].UserID)
}

func TestReserveSlotConcurrentAdmissions(t *testing.T) {
	repo := schedulerRepo.NewMongoSchedulerRepo(testDatabase(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results <- repo.ReserveSlot(ctx, newBooking(fmt.Sprintf("u%d", i)), capacity(2))
		}(i)
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		if err == nil {
			admitted++
			continue
		}
		assert.ErrorIs(t, err, errFull)
	}
	assert.Equal(t, 2, admitted)

	got, err := repo.FindByArtistAndDate(ctx, "artist-1", "2026-10-25", models.ActiveStatuses)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReserveSlotIgnoresCancelledBookings(t *testing.T) {
	db := testDatabase(t)
	repo := schedulerRepo.NewMongoSchedulerRepo(db)
	ctx := context.Background()

	cancelled := newBooking("u1")
	require.NoError(t, repo.ReserveSlot(ctx, cancelled, capacity(1)))
	_, err := db.Collection("bookings").UpdateOne(ctx,
		bson.M{"id": cancelled.ID},
		bson.M{"$set": bson.M{"status": models.StatusCancelled}})
	require.NoError(t, err)

	assert.NoError(t, repo.ReserveSlot(ctx, newBooking("u2"), capacity(1)))
}
