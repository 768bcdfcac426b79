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
	"github.com/shopspring/decimal"
)

// VoucherService records manual journal postings. Every voucher moves one
// amount from exactly one credit account to one debit account; both accounts
// must exist in the registry before a voucher may reference them.
type VoucherService struct {
	voucherRepo portsrepo.VoucherRepository
	accountRepo portsrepo.AccountRepository
}

func NewVoucherService(voucherRepo portsrepo.VoucherRepository, accountRepo portsrepo.AccountRepository) *VoucherService {
	return &VoucherService{voucherRepo: voucherRepo, accountRepo: accountRepo}
}

func (s *VoucherService) validate(ctx context.Context, vType domain.VoucherType, debitAccount, creditAccount string, amount decimal.Decimal) error {
	if !vType.Valid() {
		return fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, vType)
	}
	if debitAccount == creditAccount {
		return fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: voucher amount must be positive", apperrors.ErrValidation)
	}
	for _, name := range []string{debitAccount, creditAccount} {
		if _, err := s.accountRepo.FindAccountByName(ctx, name); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: account %q does not exist", apperrors.ErrValidation, name)
			}
			return fmt.Errorf("failed to look up account %q: %w", name, err)
		}
	}
	return nil
}

func (s *VoucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validate(ctx, req.Type, req.DebitAccount, req.CreditAccount, req.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	voucher := domain.Voucher{
		VoucherID:     uuid.NewString(),
		VoucherNumber: fmt.Sprintf("V-%d", now.UnixMilli()),
		Date:          req.Date.Time,
		Type:          req.Type,
		Narration:     req.Narration,
		DebitAccount:  req.DebitAccount,
		CreditAccount: req.CreditAccount,
		Amount:        req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucher.VoucherID))
		return nil, err
	}

	logger.Info("Voucher recorded",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("voucher_number", voucher.VoucherNumber),
		slog.String("amount", voucher.Amount.String()))
	return &voucher, nil
}

func (s *VoucherService) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	if vouchers == nil {
		return []domain.Voucher{}, nil
	}
	return vouchers, nil
}

func (s *VoucherService) UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, updaterUserID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validate(ctx, req.Type, req.DebitAccount, req.CreditAccount, req.Amount); err != nil {
		return nil, err
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	voucher.Date = req.Date.Time
	voucher.Type = req.Type
	voucher.Narration = req.Narration
	voucher.DebitAccount = req.DebitAccount
	voucher.CreditAccount = req.CreditAccount
	voucher.Amount = req.Amount
	voucher.LastUpdatedAt = time.Now()
	voucher.LastUpdatedBy = updaterUserID

	if err := s.voucherRepo.UpdateVoucher(ctx, *voucher); err != nil {
		logger.Error("Failed to update voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, err
	}

	logger.Info("Voucher updated", slog.String("voucher_id", voucherID))
	return voucher, nil
}

func (s *VoucherService) DeleteVoucher(ctx context.Context, voucherID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		}
		return err
	}

	logger.Info("Voucher deleted", slog.String("voucher_id", voucherID))
	return nil
}
