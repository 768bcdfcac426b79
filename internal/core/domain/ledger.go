package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates which side of a double entry a posting sits on.
type EntrySide string

const (
	DebitSide  EntrySide = "debit"
	CreditSide EntrySide = "credit"
)

// TransactionSource identifies the business event a transaction derives from.
type TransactionSource string

const (
	SourceSale    TransactionSource = "sale"
	SourceExpense TransactionSource = "expense"
	SourceVoucher TransactionSource = "voucher"
)

// Leg is one half of a normalized transaction: an account name and the amount
// posted to it.
type Leg struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// Transaction is the uniform double-entry representation every business event
// normalizes into. Debit and credit amounts are always equal; there are no
// partial postings.
type Transaction struct {
	Date          time.Time         `json:"date"`
	Narration     string            `json:"narration"`
	Source        TransactionSource `json:"source"`
	SourceID      string            `json:"sourceID"`
	VoucherNumber string            `json:"voucherNumber,omitempty"`
	Debit         Leg               `json:"debit"`
	Credit        Leg               `json:"credit"`
}

// Posting is a single debit or credit entry within one account's ledger,
// annotated with the running balance after it was applied.
type Posting struct {
	Date          time.Time         `json:"date"`
	Side          EntrySide         `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Narration     string            `json:"narration"`
	Source        TransactionSource `json:"source"`
	SourceID      string            `json:"sourceID"`
	VoucherNumber string            `json:"voucherNumber,omitempty"`
	Balance       decimal.Decimal   `json:"runningBalance"`
}

// Ledger is the chronological posting history of one account. Balance is the
// closing balance in the debit-positive convention: sum of debits minus sum
// of credits, accumulated in date order. Account is nil for ledgers that were
// auto-created for names absent from the registry.
type Ledger struct {
	Account  *Account        `json:"account"`
	Postings []Posting       `json:"transactions"`
	Balance  decimal.Decimal `json:"balance"`
}
