package repositories

import (
	"context"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountID string) error
}
