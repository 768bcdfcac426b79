package repositories

import (
	"context"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// VoucherRepository defines persistence operations for manually entered
// vouchers.
type VoucherRepository interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error
	DeleteVoucher(ctx context.Context, voucherID string) error
	// CountByAccountName reports how many vouchers reference the account name
	// on either leg. The registry refuses to delete accounts that are still
	// referenced.
	CountByAccountName(ctx context.Context, name string) (int64, error)
}
