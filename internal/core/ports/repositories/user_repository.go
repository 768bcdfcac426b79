package repositories

import (
	"context"
	"time"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// UserRepository defines persistence operations for staff users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error
}
