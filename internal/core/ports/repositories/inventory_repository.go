package repositories

import (
	"context"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// InventoryRepository defines persistence operations for stocked items.
type InventoryRepository interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID string) error
	// SetStock overwrites the absolute stock level.
	SetStock(ctx context.Context, itemID string, quantity int, updatedBy string) error
	// AdjustStock applies a relative delta and returns the resulting level.
	AdjustStock(ctx context.Context, itemID string, delta int, updatedBy string) (int, error)
	ListLowStock(ctx context.Context) ([]domain.InventoryItem, error)
}

// CategoryRepository defines persistence operations for menu categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
