package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{pool: pool}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	itemsJSON, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal sale items: %w", err)
	}
	var customerJSON []byte
	if sale.CustomerInfo != nil {
		customerJSON, err = json.Marshal(sale.CustomerInfo)
		if err != nil {
			return fmt.Errorf("failed to marshal customer info: %w", err)
		}
	}

	query := `
		INSERT INTO sales (sale_id, receipt_number, items, total, total_cost, profit, payment_method, customer_info, status, cashier_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = r.pool.Exec(ctx, query,
		sale.SaleID,
		sale.ReceiptNumber,
		itemsJSON,
		sale.Total,
		sale.TotalCost,
		sale.Profit,
		string(sale.PaymentMethod),
		customerJSON,
		string(sale.Status),
		sale.CashierName,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}
	return nil
}

const saleColumns = `sale_id, receipt_number, items, total, total_cost, profit, payment_method, customer_info, status, cashier_name, created_at, paid_at, paid_by`

func (r *PgxSaleRepository) scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	var itemsJSON []byte
	var customerJSON []byte
	var paymentMethod, status string
	var total, totalCost, profit decimal.Decimal
	var paidBy *string

	err := row.Scan(
		&s.SaleID,
		&s.ReceiptNumber,
		&itemsJSON,
		&total,
		&totalCost,
		&profit,
		&paymentMethod,
		&customerJSON,
		&status,
		&s.CashierName,
		&s.CreatedAt,
		&s.PaidAt,
		&paidBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan sale: %w", err)
	}

	s.Total = total
	s.TotalCost = totalCost
	s.Profit = profit
	s.PaymentMethod = domain.PaymentMethod(paymentMethod)
	s.Status = domain.SaleStatus(status)
	if paidBy != nil {
		s.PaidBy = *paidBy
	}

	if err := json.Unmarshal(itemsJSON, &s.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sale items: %w", err)
	}
	if len(customerJSON) > 0 {
		var info domain.CustomerInfo
		if err := json.Unmarshal(customerJSON, &info); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customer info: %w", err)
		}
		s.CustomerInfo = &info
	}
	return &s, nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	return r.scanSale(r.pool.QueryRow(ctx, query, saleID))
}

func (r *PgxSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *sale)
	}
	return sales, rows.Err()
}

// MarkSalePaid flips an unpaid sale to paid and records who settled it. The
// WHERE clause guards the transition so an already-paid sale is reported as a
// conflict, not silently updated twice.
func (r *PgxSaleRepository) MarkSalePaid(ctx context.Context, saleID string, updatedBy string) error {
	query := `UPDATE sales SET status = $2, paid_at = NOW(), paid_by = $3 WHERE sale_id = $1 AND status = $4;`
	tag, err := r.pool.Exec(ctx, query, saleID, string(domain.SalePaid), updatedBy, string(domain.SaleUnpaid))
	if err != nil {
		return fmt.Errorf("failed to mark sale paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sales WHERE sale_id = $1);`, saleID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check sale existence: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: sale is already paid", apperrors.ErrConflict)
		}
		return apperrors.ErrNotFound
	}
	return nil
}
