package dto

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest is the payload for adding a stocked item.
type CreateItemRequest struct {
	Name              string          `json:"name" binding:"required"`
	CategoryID        string          `json:"categoryID"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// UpdateItemRequest is the payload for editing a stocked item.
type UpdateItemRequest struct {
	Name              string          `json:"name" binding:"required"`
	CategoryID        string          `json:"categoryID"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	Cost              decimal.Decimal `json:"cost"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// SetStockRequest overwrites an item's absolute stock level.
type SetStockRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// AdjustStockRequest applies a relative stock delta (restock or shrinkage).
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CreateCategoryRequest is the payload for adding a menu category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ItemResponse is the external representation of an inventory item.
type ItemResponse struct {
	ItemID            string          `json:"id"`
	Name              string          `json:"name"`
	CategoryID        string          `json:"categoryID,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	LowStock          bool            `json:"lowStock"`
}

// ToItemResponse maps a domain inventory item to its response form.
func ToItemResponse(i domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ItemID:            i.ItemID,
		Name:              i.Name,
		CategoryID:        i.CategoryID,
		Price:             i.Price,
		Cost:              i.Cost,
		Stock:             i.Stock,
		LowStockThreshold: i.LowStockThreshold,
		LowStock:          i.IsLowStock(),
	}
}

// ToItemResponses maps a slice of domain inventory items.
func ToItemResponses(items []domain.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ToItemResponse(item)
	}
	return out
}
