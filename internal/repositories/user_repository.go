package repositories

import (
	"context"

	"medingen/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
}
