// Package memory holds in-process implementations of the repositories, used
// by tests and by local runs without MongoDB.
package memory

import (
	"context"
	"sync"

	schedulerRepo "glowbook/database/repository/scheduler"
	"glowbook/models"
)

// BookingStore is an in-memory SchedulerRepository. ReserveSlot holds the
// store lock across the check and the insert.
type BookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking

	// Err, when set, is returned by every call.
	Err error
}

var _ schedulerRepo.SchedulerRepository = (*BookingStore)(nil)

// NewBookingStore returns a store seeded with bookings.
func NewBookingStore(bookings ...models.Booking) *BookingStore {
	return &BookingStore{bookings: append([]models.Booking(nil), bookings...)}
}

// Add inserts bookings without any check.
func (s *BookingStore) Add(bookings ...models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, bookings...)
}

// All returns a copy of every stored booking.
func (s *BookingStore) All() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking(nil), s.bookings...)
}

func (s *BookingStore) FindByArtistAndDate(_ context.Context, artistID, date string, statuses []models.BookingStatus) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(func(b models.Booking) bool {
		return b.ArtistID == artistID && b.Date == date && b.HasStatus(statuses...)
	}), nil
}

func (s *BookingStore) FindByCustomer(_ context.Context, userID string, statuses []models.BookingStatus) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(func(b models.Booking) bool {
		return b.UserID == userID && b.HasStatus(statuses...)
	}), nil
}

func (s *BookingStore) ReserveSlot(_ context.Context, booking *models.Booking, check schedulerRepo.SlotCheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	existing := s.filter(func(b models.Booking) bool {
		return b.ArtistID == booking.ArtistID && b.Date == booking.Date && b.HasStatus(models.ActiveStatuses...)
	})
	if err := check(existing); err != nil {
		return err
	}
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *BookingStore) filter(keep func(models.Booking) bool) []models.Booking {
	out := []models.Booking{}
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
