package domain

import (
	"github.com/shopspring/decimal"
)

// Category groups inventory items for the cashier menu.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	AuditFields
}

// InventoryItem is a stocked product. Price is the selling price, Cost the
// per-unit cost basis used for COGS postings.
type InventoryItem struct {
	ItemID            string          `json:"itemID"`
	Name              string          `json:"name"`
	CategoryID        string          `json:"categoryID,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	AuditFields
}

// IsLowStock reports whether the item has fallen to or below its threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Stock <= i.LowStockThreshold
}
