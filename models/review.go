package models

// Review is a customer's rating of a completed appointment. Rating is nil
// when the customer left text only.
type Review struct {
	ID            string   `bson:"id" json:"id"`
	AppointmentID string   `bson:"appointment_id" json:"appointmentId"`
	ArtistID      string   `bson:"artist_id" json:"artistId"`
	Rating        *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
}
