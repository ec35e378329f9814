package booking

import (
	schedulerRepo "glowbook/database/repository/scheduler"
	"glowbook/models"
	"glowbook/utils"
)

// Availability describes how much of a slot is already taken.
type Availability struct {
	Count    int  `json:"count"`
	Capacity int  `json:"capacity"`
	Full     bool `json:"full"`
}

// CountConflicts counts active bookings whose stored range equals timeRange.
// Ranges are compared as canonical strings; overlapping ranges do not conflict.
func CountConflicts(existing []models.Booking, timeRange string) int {
	want := CanonicalTimeRange(timeRange)
	count := 0
	for _, b := range existing {
		if !b.HasStatus(models.ActiveStatuses...) {
			continue
		}
		if CanonicalTimeRange(b.TimeRange) == want {
			count++
		}
	}
	return count
}

// SlotFull evaluates a slot against capacity given the artist's bookings for
// the date. Capacity below 1 is treated as 1. Admission runs it through
// slotCheck inside the repository's reservation so the read and the insert
// see the same bookings.
func SlotFull(existing []models.Booking, timeRange string, capacity int) Availability {
	if capacity < 1 {
		capacity = 1
	}
	count := CountConflicts(existing, timeRange)
	return Availability{Count: count, Capacity: capacity, Full: count >= capacity}
}

// slotCheck adapts SlotFull to the repository's transactional check.
func slotCheck(timeRange string, capacity int) schedulerRepo.SlotCheck {
	return func(existing []models.Booking) error {
		if SlotFull(existing, timeRange, capacity).Full {
			return utils.NewAppError(utils.ErrSlotFull, "This time slot is fully booked")
		}
		return nil
	}
}
