package models

import "time"

// BookingStatus is the lifecycle state of an appointment.
type BookingStatus string

const (
	StatusInProgress BookingStatus = "in_progress"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that occupy slot capacity.
var ActiveStatuses = []BookingStatus{StatusConfirmed, StatusInProgress, StatusCompleted}

// HistoryStatuses are the statuses that feed a customer's affinity profile.
var HistoryStatuses = []BookingStatus{StatusCompleted, StatusInProgress}

// Booking represents an appointment with a makeup artist.
type Booking struct {
	ID           string        `bson:"id" json:"id"`
	ArtistID     string        `bson:"artist_id" json:"artistId"`
	ArtistUserID string        `bson:"artist_user_id" json:"artistUserId"`
	UserID       string        `bson:"user_id" json:"userId"`
	Category     string        `bson:"category" json:"category"`
	Date         string        `bson:"date" json:"date"`
	TimeRange    string        `bson:"time_range" json:"timeRange"`
	Remarks      string        `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Status       BookingStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}

// HasStatus reports whether the booking's status is one of statuses.
func (b Booking) HasStatus(statuses ...BookingStatus) bool {
	for _, s := range statuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// BookingRequest is the payload of a booking creation call.
type BookingRequest struct {
	UserID       string `json:"userId"`
	ArtistUserID string `json:"artistUserId"`
	Category     string `json:"category"`
	Date         string `json:"date"`
	TimeRange    string `json:"timeRange"`
	Remarks      string `json:"remarks,omitempty"`
}

// AppointmentDetails echoes the admitted slot back to the caller.
type AppointmentDetails struct {
	Date      string `json:"date"`
	TimeRange string `json:"time_range"`
	Category  string `json:"category"`
}

// BookingConfirmation is the result of a successful admission.
type BookingConfirmation struct {
	BookingID string             `json:"bookingId"`
	Details   AppointmentDetails `json:"appointmentDetails"`
}
