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

// ExpenseService records cash outflows.
type ExpenseService struct {
	expenseRepo portsrepo.ExpenseRepository
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		CashierName: req.CashierName,
		CreatedAt:   time.Now(),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()), slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.Category = req.Category

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, err
	}

	logger.Info("Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		}
		return err
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
