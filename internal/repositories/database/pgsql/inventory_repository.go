package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
)

type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{pool: pool}
}

var _ portsrepo.InventoryRepository = (*PgxInventoryRepository)(nil)

const itemColumns = `item_id, name, category_id, price, cost, stock, low_stock_threshold, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.CategoryID,
		item.Price,
		item.Cost,
		item.Stock,
		item.LowStockThreshold,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: item %q", apperrors.ErrDuplicate, item.Name)
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

func (r *PgxInventoryRepository) scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var i domain.InventoryItem
	var categoryID *string
	err := row.Scan(
		&i.ItemID,
		&i.Name,
		&categoryID,
		&i.Price,
		&i.Cost,
		&i.Stock,
		&i.LowStockThreshold,
		&i.CreatedAt,
		&i.CreatedBy,
		&i.LastUpdatedAt,
		&i.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan inventory item: %w", err)
	}
	if categoryID != nil {
		i.CategoryID = *categoryID
	}
	return &i, nil
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1;`
	return r.scanItem(r.pool.QueryRow(ctx, query, itemID))
}

func (r *PgxInventoryRepository) listItems(ctx context.Context, query string) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PgxInventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return r.listItems(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY name;`)
}

func (r *PgxInventoryRepository) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	return r.listItems(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE stock <= low_stock_threshold ORDER BY name;`)
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category_id = NULLIF($3, ''), price = $4, cost = $5, low_stock_threshold = $6, last_updated_at = $7, last_updated_by = $8
		WHERE item_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.CategoryID,
		item.Price,
		item.Cost,
		item.LowStockThreshold,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInventoryRepository) SetStock(ctx context.Context, itemID string, quantity int, updatedBy string) error {
	query := `UPDATE inventory_items SET stock = $2, last_updated_at = now(), last_updated_by = $3 WHERE item_id = $1;`
	tag, err := r.pool.Exec(ctx, query, itemID, quantity, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustStock applies the delta atomically and returns the new level, so
// concurrent sales cannot lose decrements.
func (r *PgxInventoryRepository) AdjustStock(ctx context.Context, itemID string, delta int, updatedBy string) (int, error) {
	query := `
		UPDATE inventory_items
		SET stock = stock + $2, last_updated_at = now(), last_updated_by = $3
		WHERE item_id = $1
		RETURNING stock;
	`
	var level int
	err := r.pool.QueryRow(ctx, query, itemID, delta, updatedBy).Scan(&level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return level, nil
}

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: category %q", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT category_id, name, created_at, created_by, last_updated_at, last_updated_by FROM categories ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
