package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType classifies a manually entered journal posting.
type VoucherType string

const (
	VoucherPayment VoucherType = "Payment"
	VoucherReceipt VoucherType = "Receipt"
	VoucherJournal VoucherType = "Journal"
	VoucherContra  VoucherType = "Contra"
)

// Valid reports whether t is a recognised voucher type.
func (t VoucherType) Valid() bool {
	switch t {
	case VoucherPayment, VoucherReceipt, VoucherJournal, VoucherContra:
		return true
	}
	return false
}

// Voucher is a manually entered double-entry posting between two registered
// accounts. Debit and credit accounts must differ and the amount must be
// strictly positive; both names must exist in the registry at creation time.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	VoucherNumber string          `json:"voucherNumber"`
	Date          time.Time       `json:"date"`
	Type          VoucherType     `json:"type"`
	Narration     string          `json:"narration"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	AuditFields
}
