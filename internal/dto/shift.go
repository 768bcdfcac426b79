package dto

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest starts a cashier session with a counted opening float.
type OpenShiftRequest struct {
	CashierName  string          `json:"cashierName" binding:"required"`
	OpeningFloat decimal.Decimal `json:"openingFloat"`
}

// CloseShiftRequest ends a session with the counted closing float.
type CloseShiftRequest struct {
	ClosingFloat decimal.Decimal `json:"closingFloat"`
}

// ShiftResponse is the external representation of a shift.
type ShiftResponse struct {
	ShiftID      string           `json:"id"`
	CashierName  string           `json:"cashierName"`
	OpeningFloat decimal.Decimal  `json:"openingFloat"`
	ClosingFloat *decimal.Decimal `json:"closingFloat,omitempty"`
	StartedAt    string           `json:"startedAt"`
	EndedAt      string           `json:"endedAt,omitempty"`
	Open         bool             `json:"open"`
}

// ToShiftResponse maps a domain shift to its response form.
func ToShiftResponse(s domain.Shift) ShiftResponse {
	resp := ShiftResponse{
		ShiftID:      s.ShiftID,
		CashierName:  s.CashierName,
		OpeningFloat: s.OpeningFloat,
		ClosingFloat: s.ClosingFloat,
		StartedAt:    s.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		Open:         s.IsOpen(),
	}
	if s.EndedAt != nil {
		resp.EndedAt = s.EndedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// ToShiftResponses maps a slice of domain shifts.
func ToShiftResponses(shifts []domain.Shift) []ShiftResponse {
	out := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		out[i] = ToShiftResponse(s)
	}
	return out
}
