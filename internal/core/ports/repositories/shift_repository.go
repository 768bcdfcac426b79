package repositories

import (
	"context"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// ShiftRepository defines persistence operations for cashier shifts.
type ShiftRepository interface {
	SaveShift(ctx context.Context, shift domain.Shift) error
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)
	FindOpenShiftByCashier(ctx context.Context, cashierName string) (*domain.Shift, error)
	ListShifts(ctx context.Context) ([]domain.Shift, error)
	UpdateShift(ctx context.Context, shift domain.Shift) error
}
