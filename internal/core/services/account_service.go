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

// AccountService manages the chart of accounts. Account names are unique:
// ledger postings reference accounts by name, so a rename or delete must not
// leave dangling references.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
	voucherRepo portsrepo.VoucherRepository
}

func NewAccountService(accountRepo portsrepo.AccountRepository, voucherRepo portsrepo.VoucherRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo, voucherRepo: voucherRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accType := domain.AccountType(req.Type)
	if !accType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}

	existing, err := s.accountRepo.FindAccountByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check account name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account %q", apperrors.ErrDuplicate, req.Name)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		Type:        accType,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accType := domain.AccountType(req.Type)
	if !accType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != account.Name {
		existing, err := s.accountRepo.FindAccountByName(ctx, req.Name)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check account name: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: account %q", apperrors.ErrDuplicate, req.Name)
		}
	}

	account.Name = req.Name
	account.Type = accType
	account.Description = req.Description
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeleteAccount removes an account from the registry. Accounts still
// referenced by vouchers are protected: deleting them would orphan postings.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	refs, err := s.voucherRepo.CountByAccountName(ctx, account.Name)
	if err != nil {
		logger.Error("Failed to count voucher references", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to count voucher references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: account %q is referenced by %d voucher(s)", apperrors.ErrConflict, account.Name, refs)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID), slog.String("name", account.Name))
	return nil
}
