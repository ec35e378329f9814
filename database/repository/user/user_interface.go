package userRepo

import (
	"context"

	"glowbook/models"
)

// UserRepository defines read access to customer accounts.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID; nil when not found.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// ExistsByUsername reports whether any account uses username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// ExistsByEmail reports whether any account uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
