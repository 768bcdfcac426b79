package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an out-of-pocket cost captured at the till. It always posts as a
// debit to the Expenses ledger and a credit to Cash/Bank.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	CashierName string          `json:"cashierName"`
	CreatedAt   time.Time       `json:"createdAt"`
}
