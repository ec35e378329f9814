package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"glowbook/database/repository/memory"
	"glowbook/models"
	"glowbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Booking
	err    error
}

func (p *recordingPublisher) BookingCreated(_ context.Context, b models.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, b)
	return p.err
}

type fixture struct {
	svc       *DefaultBookingService
	bookings  *memory.BookingStore
	providers *memory.ProviderStore
	publisher *recordingPublisher
}

func newFixture(existing ...models.Booking) *fixture {
	bookings := memory.NewBookingStore(existing...)
	providers := memory.NewProviderStore(
		models.Provider{ID: "artist-1", UserID: "owner-1", Name: "Amina", SlotCapacity: 2, Status: models.ProviderStatusApproved},
		models.Provider{ID: "artist-2", UserID: "owner-2", Name: "Wanjiru", Status: models.ProviderStatusApproved},
	)
	publisher := &recordingPublisher{}
	svc := NewBookingService(bookings, providers, publisher, DefaultRules, zap.NewNop())
	svc.Now = func() time.Time { return fixedNow }
	return &fixture{svc: svc, bookings: bookings, providers: providers, publisher: publisher}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		UserID:       "customer-1",
		ArtistUserID: "owner-1",
		Category:     "Bridal",
		Date:         "2026-10-24",
		TimeRange:    "9.00 am - 12.00 pm",
		Remarks:      "outdoor venue",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	f := newFixture()

	got, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, got.BookingID)
	assert.Equal(t, models.AppointmentDetails{Date: "2026-10-24", TimeRange: "9:00 AM - 12:00 PM", Category: "Bridal"}, got.Details)

	stored := f.bookings.All()
	require.Len(t, stored, 1)
	assert.Equal(t, got.BookingID, stored[0].ID)
	assert.Equal(t, "artist-1", stored[0].ArtistID)
	assert.Equal(t, "owner-1", stored[0].ArtistUserID)
	assert.Equal(t, models.StatusInProgress, stored[0].Status)
	assert.Equal(t, fixedNow, stored[0].CreatedAt)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, got.BookingID, f.publisher.events[0].ID)
}

func TestCreateBookingMissingFields(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.UserID = "  "
	req.Date = ""

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.True(t, utils.HasCode(err, utils.ErrMissingFields))
	assert.Contains(t, err.Error(), "userId, date")
	assert.Empty(t, f.bookings.All())
}

func TestCreateBookingValidationOrder(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.TimeRange = "9-12"
	req.Date = "2026-10-20"
	req.ArtistUserID = "nobody"

	_, err := f.svc.CreateBooking(context.Background(), req)
	assert.True(t, utils.HasCode(err, utils.ErrInvalidTimeFormat))
}

func TestCreateBookingLeadTime(t *testing.T) {
	cases := []struct {
		date string
		code utils.ErrorCode
	}{
		{"2026-10-19", utils.ErrLeadTimeViolation},
		{"2026-10-20", utils.ErrLeadTimeViolation},
		{"2026-10-21", utils.ErrLeadTimeViolation},
		{"2026-10-22", ""},
		{"2026-10-22T23:30:00-05:00", ""},
		{"2026-10-21T23:59:59Z", utils.ErrLeadTimeViolation},
		{"22/10/2026", utils.ErrInvalidDate},
		{"tomorrow", utils.ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			req.Date = tc.date

			_, err := f.svc.CreateBooking(context.Background(), req)
			if tc.code == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, utils.HasCode(err, tc.code), "got %v", err)
			assert.Empty(t, f.bookings.All())
		})
	}
}

func TestCreateBookingLeadTimeUsesConfiguredCalendar(t *testing.T) {
	f := newFixture()
	// 22:00 UTC on the 19th is already the 20th three hours east.
	f.svc.Now = func() time.Time { return time.Date(2026, 10, 19, 22, 0, 0, 0, time.UTC) }
	f.svc.Rules.Location = time.FixedZone("EAT", 3*60*60)

	req := validRequest()
	req.Date = "2026-10-22"
	_, err := f.svc.CreateBooking(context.Background(), req)
	assert.True(t, utils.HasCode(err, utils.ErrLeadTimeViolation))

	req.Date = "2026-10-23"
	_, err = f.svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBookingProviderNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ArtistUserID = "owner-404"

	_, err := f.svc.CreateBooking(context.Background(), req)
	assert.True(t, utils.HasCode(err, utils.ErrProviderNotFound))
}

func TestCreateBookingProviderStoreFailure(t *testing.T) {
	f := newFixture()
	f.providers.Err = errors.New("socket closed")

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.True(t, utils.HasCode(err, utils.ErrUpstreamUnavailable))
	assert.Contains(t, utils.PublicMessage(err), "socket closed")
}

func TestCreateBookingSlotFull(t *testing.T) {
	f := newFixture(
		models.Booking{ID: "b1", ArtistID: "artist-1", Date: "2026-10-24", TimeRange: "9:00 AM - 12:00 PM", Status: models.StatusConfirmed},
		models.Booking{ID: "b2", ArtistID: "artist-1", Date: "2026-10-24", TimeRange: "9:00 AM - 12:00 PM", Status: models.StatusConfirmed},
	)

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, utils.HasCode(err, utils.ErrSlotFull))
	assert.Len(t, f.bookings.All(), 2)
	assert.Empty(t, f.publisher.events)

	req := validRequest()
	req.TimeRange = "1:00 PM - 3:00 PM"
	_, err = f.svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBookingUsesDefaultCapacity(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ArtistUserID = "owner-2"

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(context.Background(), req)
	assert.True(t, utils.HasCode(err, utils.ErrSlotFull))
}

func TestCreateBookingConcurrentAdmissionsRespectCapacity(t *testing.T) {
	f := newFixture()

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateBooking(context.Background(), validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		if err == nil {
			admitted++
			continue
		}
		assert.True(t, utils.HasCode(err, utils.ErrSlotFull))
	}
	assert.Equal(t, 2, admitted)
	assert.Len(t, f.bookings.All(), 2)
}

func TestCreateBookingPublishFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("redis down")

	got, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, got.BookingID)
	assert.Len(t, f.bookings.All(), 1)
}

func TestCreateBookingStoreWriteFailure(t *testing.T) {
	f := newFixture()
	f.bookings.Err = errors.New("write concern timeout")

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.True(t, utils.HasCode(err, utils.ErrUpstreamUnavailable))
}
