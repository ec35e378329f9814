package recommendation

import (
	"context"
	"errors"
	"testing"

	"glowbook/config"
	"glowbook/database/repository/memory"
	"glowbook/models"
	"glowbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stores struct {
	bookings  *memory.BookingStore
	reviews   *memory.ReviewStore
	users     *memory.UserStore
	providers *memory.ProviderStore
}

func newService(s stores) *DefaultRecommendationService {
	cfg := config.Config{RatingThreshold: 3.0, RecommendationLimit: 5}
	return NewRecommendationService(s.bookings, s.reviews, s.users, s.providers, cfg, zap.NewNop())
}

func catalogue() *memory.ProviderStore {
	pending := approved("p-pending", 5.0, "bridal")
	pending.Status = "pending"
	return memory.NewProviderStore(
		approved("p1", 4.8, "bridal", "party"),
		approved("p2", 4.1, "party"),
		approved("p3", 3.9, "editorial"),
		approved("p4", 4.5, "bridal"),
		approved("p5", 2.5, "sfx"),
		approved("p6", 4.9, "editorial"),
		pending,
	)
}

func TestRecommendTopRatedForNewUser(t *testing.T) {
	svc := newService(stores{
		bookings:  memory.NewBookingStore(),
		reviews:   memory.NewReviewStore(),
		users:     memory.NewUserStore(models.User{ID: "u1"}),
		providers: catalogue(),
	})

	got, err := svc.Recommend(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SourceTopRated, got.Source)
	assert.Equal(t, models.ProfileFromNothing, got.ProfileSource)
	assert.Equal(t, []string{"p6", "p1", "p4", "p2", "p3"}, ids(got.Recommendations))
	assert.Equal(t, 5, got.TotalFound)
	assert.Nil(t, got.UserProfile)
}

func TestRecommendContentBasedFromHistory(t *testing.T) {
	svc := newService(stores{
		bookings: memory.NewBookingStore(
			models.Booking{ID: "b1", UserID: "u1", ArtistUserID: "owner-p4", Category: "Bridal", Status: models.StatusInProgress},
			models.Booking{ID: "b2", UserID: "u1", ArtistUserID: "owner-p4", Category: "bridal", Status: models.StatusInProgress},
			models.Booking{ID: "b3", UserID: "u1", ArtistUserID: "owner-p9", Category: "party", Status: models.StatusCompleted},
		),
		reviews:   memory.NewReviewStore(models.Review{ID: "r1", AppointmentID: "b3", Rating: rating(4.5)}),
		users:     memory.NewUserStore(),
		providers: catalogue(),
	})

	got, err := svc.Recommend(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SourceContentBased, got.Source)
	assert.Equal(t, models.ProfileFromHistory, got.ProfileSource)
	assert.Equal(t, models.AffinityProfile{"bridal": 2, "party": 1}, got.UserProfile)
	// p4 is already booked; p1 scores 3, p2 scores 1.
	assert.Equal(t, []string{"p1", "p2"}, ids(got.Recommendations))
	assert.Equal(t, 2, got.TotalFound)
}

func TestRecommendFromPreferences(t *testing.T) {
	svc := newService(stores{
		bookings:  memory.NewBookingStore(),
		reviews:   memory.NewReviewStore(),
		users:     memory.NewUserStore(models.User{ID: "u1", Preferences: []string{"Editorial"}}),
		providers: catalogue(),
	})

	got, err := svc.Recommend(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SourceContentBased, got.Source)
	assert.Equal(t, models.ProfileFromPreferences, got.ProfileSource)
	assert.Equal(t, []string{"p3", "p6"}, ids(got.Recommendations))
}

func TestRecommendNoMatchesIsEmptyContentBased(t *testing.T) {
	svc := newService(stores{
		bookings:  memory.NewBookingStore(),
		reviews:   memory.NewReviewStore(),
		users:     memory.NewUserStore(models.User{ID: "u1", Preferences: []string{"henna"}}),
		providers: catalogue(),
	})

	got, err := svc.Recommend(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SourceContentBased, got.Source)
	assert.Empty(t, got.Recommendations)
	assert.NotNil(t, got.Recommendations)
	assert.Equal(t, 0, got.TotalFound)
}

func TestRecommendRequiresUserID(t *testing.T) {
	svc := newService(stores{
		bookings:  memory.NewBookingStore(),
		reviews:   memory.NewReviewStore(),
		users:     memory.NewUserStore(),
		providers: catalogue(),
	})

	_, err := svc.Recommend(context.Background(), "  ")
	assert.True(t, utils.HasCode(err, utils.ErrInvalidArgument))
}

func TestRecommendProviderStoreFailure(t *testing.T) {
	providers := catalogue()
	providers.Err = errors.New("cursor killed")
	svc := newService(stores{
		bookings:  memory.NewBookingStore(),
		reviews:   memory.NewReviewStore(),
		users:     memory.NewUserStore(),
		providers: providers,
	})

	_, err := svc.Recommend(context.Background(), "u1")
	assert.True(t, utils.HasCode(err, utils.ErrUpstreamUnavailable))
}
