package dto

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for recording an expense.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
	CashierName string          `json:"cashierName"`
}

// UpdateExpenseRequest is the payload for editing an expense.
type UpdateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
}

// ExpenseResponse is the external representation of an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	CashierName string          `json:"cashierName"`
	CreatedAt   string          `json:"createdAt"`
}

// ToExpenseResponse maps a domain expense to its response form.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		CashierName: e.CashierName,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToExpenseResponses maps a slice of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}
