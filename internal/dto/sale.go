package dto

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one receipt line in a checkout request. UnitCost is the
// per-unit cost basis used for the COGS posting; when the item is a stocked
// inventory item, ItemID links it so stock can be decremented.
type SaleItemRequest struct {
	ItemID    string          `json:"itemID"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// CustomerInfoRequest identifies the customer on a credit sale.
type CustomerInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
}

// CreateSaleRequest is the checkout payload. Totals and profit are recomputed
// server-side from the line items; any client-supplied figures are ignored.
type CreateSaleRequest struct {
	ReceiptNumber string               `json:"receiptNumber"`
	Items         []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,paymentmethod"`
	CustomerInfo  *CustomerInfoRequest `json:"customerInfo"`
	CashierName   string               `json:"cashierName"`
}

// SaleResponse is the external representation of a sale.
type SaleResponse struct {
	SaleID        string               `json:"id"`
	ReceiptNumber string               `json:"receiptNumber"`
	Items         []domain.SaleItem    `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	TotalCost     decimal.Decimal      `json:"totalCost"`
	Profit        decimal.Decimal      `json:"profit"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	CustomerInfo  *domain.CustomerInfo `json:"customerInfo,omitempty"`
	Status        domain.SaleStatus    `json:"status"`
	CashierName   string               `json:"cashierName"`
	CreatedAt     string               `json:"createdAt"`
	PaidAt        string               `json:"paidAt,omitempty"`
	PaidBy        string               `json:"paidBy,omitempty"`
}

// ToSaleResponse maps a domain sale to its response form.
func ToSaleResponse(s domain.Sale) SaleResponse {
	paidAt := ""
	if s.PaidAt != nil {
		paidAt = s.PaidAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		ReceiptNumber: s.ReceiptNumber,
		Items:         s.Items,
		Total:         s.Total,
		TotalCost:     s.TotalCost,
		Profit:        s.Profit,
		PaymentMethod: s.PaymentMethod,
		CustomerInfo:  s.CustomerInfo,
		Status:        s.Status,
		CashierName:   s.CashierName,
		CreatedAt:     s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		PaidAt:        paidAt,
		PaidBy:        s.PaidBy,
	}
}

// ToSaleResponses maps a slice of domain sales.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(s)
	}
	return out
}
