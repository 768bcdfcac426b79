package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
	"github.com/kasozib/bar_pos_backend/internal/dto"
	"github.com/kasozib/bar_pos_backend/internal/middleware"
)

// InventoryService manages stocked items and their menu categories.
type InventoryService struct {
	inventoryRepo portsrepo.InventoryRepository
	categoryRepo  portsrepo.CategoryRepository
}

func NewInventoryService(inventoryRepo portsrepo.InventoryRepository, categoryRepo portsrepo.CategoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo, categoryRepo: categoryRepo}
}

func (s *InventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              req.Name,
		CategoryID:        req.CategoryID,
		Price:             req.Price,
		Cost:              req.Cost,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		logger.Error("Failed to save inventory item", slog.String("error", err.Error()), slog.String("item_id", item.ItemID))
		return nil, err
	}

	logger.Info("Inventory item created", slog.String("item_id", item.ItemID), slog.String("name", item.Name))
	return &item, nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	items, err := s.inventoryRepo.ListItems(ctx)
	if err != nil {
		logger.Error("Failed to list inventory items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.CategoryID = req.CategoryID
	item.Price = req.Price
	item.Cost = req.Cost
	item.LowStockThreshold = req.LowStockThreshold
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = updaterUserID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		logger.Error("Failed to update inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, err
	}

	logger.Info("Inventory item updated", slog.String("item_id", itemID))
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, itemID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.inventoryRepo.DeleteItem(ctx, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return err
	}

	logger.Info("Inventory item deleted", slog.String("item_id", itemID))
	return nil
}

// SetStock overwrites the absolute stock level, e.g. after a physical count.
func (s *InventoryService) SetStock(ctx context.Context, itemID string, quantity int, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if quantity < 0 {
		return fmt.Errorf("%w: stock cannot be negative", apperrors.ErrValidation)
	}

	if err := s.inventoryRepo.SetStock(ctx, itemID, quantity, updaterUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to set stock", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return err
	}

	logger.Info("Stock level set", slog.String("item_id", itemID), slog.Int("quantity", quantity))
	return nil
}

// AdjustStock applies a relative delta and returns the resulting level.
// A delta that would drive stock negative is rejected.
func (s *InventoryService) AdjustStock(ctx context.Context, itemID string, delta int, updaterUserID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if item.Stock+delta < 0 {
		return 0, fmt.Errorf("%w: adjustment of %d would drive stock below zero (current %d)", apperrors.ErrValidation, delta, item.Stock)
	}

	level, err := s.inventoryRepo.AdjustStock(ctx, itemID, delta, updaterUserID)
	if err != nil {
		logger.Error("Failed to adjust stock", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return 0, err
	}

	logger.Info("Stock adjusted", slog.String("item_id", itemID), slog.Int("delta", delta), slog.Int("level", level))
	return level, nil
}

func (s *InventoryService) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	items, err := s.inventoryRepo.ListLowStock(ctx)
	if err != nil {
		logger.Error("Failed to list low stock items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

func (s *InventoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, err
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("name", category.Name))
	return &category, nil
}

func (s *InventoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *InventoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return err
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}
