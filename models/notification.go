package models

// BookingCreatedPayload is the body of a booking-created notification task.
type BookingCreatedPayload struct {
	BookingID    string `json:"bookingId"`
	ArtistUserID string `json:"artistUserId"`
	UserID       string `json:"userId"`
	Category     string `json:"category"`
	Date         string `json:"date"`
	TimeRange    string `json:"timeRange"`
}

// NewBookingCreatedPayload captures what the notifier needs from booking.
func NewBookingCreatedPayload(b Booking) BookingCreatedPayload {
	return BookingCreatedPayload{
		BookingID:    b.ID,
		ArtistUserID: b.ArtistUserID,
		UserID:       b.UserID,
		Category:     b.Category,
		Date:         b.Date,
		TimeRange:    b.TimeRange,
	}
}
