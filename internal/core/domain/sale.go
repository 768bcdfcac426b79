package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale was settled at the till.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
	PaymentCredit PaymentMethod = "credit"
)

// Valid reports whether m is a recognised payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentCredit:
		return true
	}
	return false
}

// SaleStatus tracks settlement of a sale. Credit sales start unpaid and
// transition to paid exactly once; the transition never reverses.
type SaleStatus string

const (
	SalePaid   SaleStatus = "paid"
	SaleUnpaid SaleStatus = "unpaid"
)

// SaleItem is one line of a receipt.
type SaleItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ItemID    string          `json:"itemID,omitempty"`
}

// CustomerInfo identifies the customer on a credit sale.
type CustomerInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Sale is a completed checkout. Total and Profit are recomputed server-side
// from the line items and cost basis; client-supplied figures are not trusted.
type Sale struct {
	SaleID        string          `json:"saleID"`
	ReceiptNumber string          `json:"receiptNumber"`
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Profit        decimal.Decimal `json:"profit"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CustomerInfo  *CustomerInfo   `json:"customerInfo,omitempty"`
	Status        SaleStatus      `json:"status"`
	CashierName   string          `json:"cashierName"`
	CreatedAt     time.Time       `json:"createdAt"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	PaidBy        string          `json:"paidBy,omitempty"`
}

// CostOfGoods returns the cost basis to post against inventory for this sale.
// Falls back to total minus profit when no explicit cost was recorded.
func (s Sale) CostOfGoods() decimal.Decimal {
	if !s.TotalCost.IsZero() {
		return s.TotalCost
	}
	return s.Total.Sub(s.Profit)
}
