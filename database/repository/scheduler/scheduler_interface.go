package schedulerRepo

import (
	"context"

	"glowbook/models"
)

// SlotCheck inspects the active bookings of a provider on a date and returns
// an error when the candidate booking must not be admitted.
type SlotCheck func(existing []models.Booking) error

// SchedulerRepository is the booking store used by admission and profiling.
type SchedulerRepository interface {
	// FindByArtistAndDate returns bookings of an artist on a date whose status is in statuses.
	FindByArtistAndDate(ctx context.Context, artistID, date string, statuses []models.BookingStatus) ([]models.Booking, error)
	// FindByCustomer returns a customer's bookings whose status is in statuses.
	FindByCustomer(ctx context.Context, userID string, statuses []models.BookingStatus) ([]models.Booking, error)
	// ReserveSlot atomically loads the active bookings for booking's artist and
	// date, runs check over them and inserts booking only if check passes.
	ReserveSlot(ctx context.Context, booking *models.Booking, check SlotCheck) error
}
