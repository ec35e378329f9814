package providerRepo

import (
	"context"

	"glowbook/models"
)

// ProviderRepository defines read access to makeup artist profiles.
type ProviderRepository interface {
	// GetByUserID retrieves the artist owned by a user account; nil when none exists.
	GetByUserID(ctx context.Context, userID string) (*models.Provider, error)
	// GetApproved retrieves every approved artist.
	GetApproved(ctx context.Context) ([]models.Provider, error)
}
