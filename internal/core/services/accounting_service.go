package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/kasozib/bar_pos_backend/internal/core/ledger"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
)

// AccountingService derives ledgers and reports on demand. Nothing is stored:
// every call re-reads the books of entry and recomputes, so the output always
// reflects the current state of sales, expenses and vouchers.
type AccountingService struct {
	accountRepo portsrepo.AccountRepository
	saleRepo    portsrepo.SaleRepository
	expenseRepo portsrepo.ExpenseRepository
	voucherRepo portsrepo.VoucherRepository
}

func NewAccountingService(
	accountRepo portsrepo.AccountRepository,
	saleRepo portsrepo.SaleRepository,
	expenseRepo portsrepo.ExpenseRepository,
	voucherRepo portsrepo.VoucherRepository,
) *AccountingService {
	return &AccountingService{
		accountRepo: accountRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		voucherRepo: voucherRepo,
	}
}

// snapshot loads everything the derivation needs in one pass.
func (s *AccountingService) snapshot(ctx context.Context) (ledger.Snapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts for derivation", slog.String("error", err.Error()))
		return ledger.Snapshot{}, fmt.Errorf("failed to list accounts: %w", err)
	}
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		logger.Error("Failed to list sales for derivation", slog.String("error", err.Error()))
		return ledger.Snapshot{}, fmt.Errorf("failed to list sales: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		logger.Error("Failed to list expenses for derivation", slog.String("error", err.Error()))
		return ledger.Snapshot{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		logger.Error("Failed to list vouchers for derivation", slog.String("error", err.Error()))
		return ledger.Snapshot{}, fmt.Errorf("failed to list vouchers: %w", err)
	}

	return ledger.Snapshot{
		Accounts: accounts,
		Sales:    sales,
		Expenses: expenses,
		Vouchers: vouchers,
	}, nil
}

// Ledgers returns the per-account ledgers with running balances.
func (s *AccountingService) Ledgers(ctx context.Context) (map[string]domain.Ledger, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	txns := ledger.Normalize(snap)
	return ledger.Build(snap.Accounts, txns), nil
}

// DayBook returns every derived transaction in chronological order.
func (s *AccountingService) DayBook(ctx context.Context) ([]domain.Transaction, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.DayBook(ledger.Normalize(snap)), nil
}

// TrialBalance returns the trial balance over all non-zero accounts.
func (s *AccountingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	ledgers, err := s.Ledgers(ctx)
	if err != nil {
		return nil, err
	}
	tb := ledger.TrialBalance(ledgers)
	return &tb, nil
}

// ProfitAndLoss returns the income statement.
func (s *AccountingService) ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLoss, error) {
	ledgers, err := s.Ledgers(ctx)
	if err != nil {
		return nil, err
	}
	pl := ledger.ProfitAndLoss(ledgers)
	return &pl, nil
}

// BalanceSheet returns the statement of financial position.
func (s *AccountingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	ledgers, err := s.Ledgers(ctx)
	if err != nil {
		return nil, err
	}
	bs := ledger.BalanceSheet(ledgers)
	return &bs, nil
}
