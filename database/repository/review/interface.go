package reviewRepo

import (
	"context"

	"glowbook/models"
)

// ReviewRepository reads customer reviews of appointments.
type ReviewRepository interface {
	// GetByAppointmentIDs returns reviews grouped by appointment id.
	GetByAppointmentIDs(ctx context.Context, appointmentIDs []string) (map[string][]models.Review, error)
}
