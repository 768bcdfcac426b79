package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is one cashier session at the till, from float count-in to count-out.
type Shift struct {
	ShiftID      string           `json:"shiftID"`
	CashierName  string           `json:"cashierName"`
	OpeningFloat decimal.Decimal  `json:"openingFloat"`
	ClosingFloat *decimal.Decimal `json:"closingFloat,omitempty"`
	StartedAt    time.Time        `json:"startedAt"`
	EndedAt      *time.Time       `json:"endedAt,omitempty"`
}

// IsOpen reports whether the shift has not yet been closed.
func (s Shift) IsOpen() bool {
	return s.EndedAt == nil
}
