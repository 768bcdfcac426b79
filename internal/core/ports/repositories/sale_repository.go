package repositories

import (
	"context"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	// MarkSalePaid flips an unpaid sale to paid. It returns apperrors.ErrConflict
	// when the sale exists but is already paid, apperrors.ErrNotFound otherwise.
	MarkSalePaid(ctx context.Context, saleID string, updatedBy string) error
}
