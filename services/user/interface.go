package user

import (
	"context"

	userRepo "glowbook/database/repository/user"
	"glowbook/models"
)

type UserService interface {
	// Account lookup
	CheckUserExists(ctx context.Context, username, email string) (*models.UserExistence, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func NewUserService(repo userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{Repo: repo}
}
