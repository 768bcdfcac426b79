package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
	"github.com/kasozib/bar_pos_backend/internal/dto"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
)

// ShiftService manages cashier sessions. A cashier has at most one open
// shift at a time.
type ShiftService struct {
	shiftRepo portsrepo.ShiftRepository
}

func NewShiftService(shiftRepo portsrepo.ShiftRepository) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo}
}

func (s *ShiftService) OpenShift(ctx context.Context, req dto.OpenShiftRequest) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningFloat.IsNegative() {
		return nil, fmt.Errorf("%w: opening float cannot be negative", apperrors.ErrValidation)
	}

	open, err := s.shiftRepo.FindOpenShiftByCashier(ctx, req.CashierName)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for open shift", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check for open shift: %w", err)
	}
	if open != nil {
		return nil, fmt.Errorf("%w: cashier %q already has an open shift", apperrors.ErrConflict, req.CashierName)
	}

	shift := domain.Shift{
		ShiftID:      uuid.NewString(),
		CashierName:  req.CashierName,
		OpeningFloat: req.OpeningFloat,
		StartedAt:    time.Now(),
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		logger.Error("Failed to save shift", slog.String("error", err.Error()), slog.String("shift_id", shift.ShiftID))
		return nil, err
	}

	logger.Info("Shift opened", slog.String("shift_id", shift.ShiftID), slog.String("cashier", shift.CashierName))
	return &shift, nil
}

func (s *ShiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ClosingFloat.IsNegative() {
		return nil, fmt.Errorf("%w: closing float cannot be negative", apperrors.ErrValidation)
	}

	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: shift is already closed", apperrors.ErrConflict)
	}

	now := time.Now()
	closing := req.ClosingFloat
	shift.ClosingFloat = &closing
	shift.EndedAt = &now

	if err := s.shiftRepo.UpdateShift(ctx, *shift); err != nil {
		logger.Error("Failed to close shift", slog.String("error", err.Error()), slog.String("shift_id", shiftID))
		return nil, err
	}

	logger.Info("Shift closed", slog.String("shift_id", shiftID))
	return shift, nil
}

func (s *ShiftService) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	shifts, err := s.shiftRepo.ListShifts(ctx)
	if err != nil {
		logger.Error("Failed to list shifts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	if shifts == nil {
		return []domain.Shift{}, nil
	}
	return shifts, nil
}
