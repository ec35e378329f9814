package user

import (
	"context"
	"strings"

	"glowbook/models"
	"glowbook/utils"
)

// CheckUserExists reports whether the username and/or email are already
// registered. At least one of them must be given.
func (s *DefaultUserService) CheckUserExists(ctx context.Context, username, email string) (*models.UserExistence, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" && email == "" {
		return nil, utils.NewAppError(utils.ErrInvalidArgument, "Either username or email must be provided.")
	}

	result := &models.UserExistence{}
	if username != "" {
		exists, err := s.Repo.ExistsByUsername(ctx, username)
		if err != nil {
			return nil, utils.Upstream("Failed to check username", err)
		}
		result.UsernameExists = exists
	}
	if email != "" {
		exists, err := s.Repo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, utils.Upstream("Failed to check email", err)
		}
		result.EmailExists = exists
	}
	return result, nil
}
