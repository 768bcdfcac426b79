package dto

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest is the payload for a manual journal posting.
type CreateVoucherRequest struct {
	Date          Date               `json:"date" binding:"required"`
	Type          domain.VoucherType `json:"type" binding:"required,vouchertype"`
	Narration     string             `json:"narration"`
	DebitAccount  string             `json:"debitAccount" binding:"required"`
	CreditAccount string             `json:"creditAccount" binding:"required"`
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
}

// UpdateVoucherRequest is the payload for editing a voucher.
type UpdateVoucherRequest struct {
	Date          Date               `json:"date" binding:"required"`
	Type          domain.VoucherType `json:"type" binding:"required,vouchertype"`
	Narration     string             `json:"narration"`
	DebitAccount  string             `json:"debitAccount" binding:"required"`
	CreditAccount string             `json:"creditAccount" binding:"required"`
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
}

// VoucherResponse is the external representation of a voucher.
type VoucherResponse struct {
	VoucherID     string             `json:"id"`
	VoucherNumber string             `json:"voucherNumber"`
	Date          string             `json:"date"`
	Type          domain.VoucherType `json:"type"`
	Narration     string             `json:"narration,omitempty"`
	DebitAccount  string             `json:"debitAccount"`
	CreditAccount string             `json:"creditAccount"`
	Amount        decimal.Decimal    `json:"amount"`
	CreatedBy     string             `json:"createdBy"`
}

// ToVoucherResponse maps a domain voucher to its response form.
func ToVoucherResponse(v domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		VoucherNumber: v.VoucherNumber,
		Date:          v.Date.Format("2006-01-02"),
		Type:          v.Type,
		Narration:     v.Narration,
		DebitAccount:  v.DebitAccount,
		CreditAccount: v.CreditAccount,
		Amount:        v.Amount,
		CreatedBy:     v.CreatedBy,
	}
}

// ToVoucherResponses maps a slice of domain vouchers.
func ToVoucherResponses(vouchers []domain.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		out[i] = ToVoucherResponse(v)
	}
	return out
}
