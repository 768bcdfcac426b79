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

type PgxVoucherRepository struct {
	pool *pgxpool.Pool
}

func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{pool: pool}
}

var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, voucher_number, voucher_date, voucher_type, narration, debit_account, credit_account, amount, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		voucher.VoucherID,
		voucher.VoucherNumber,
		voucher.Date,
		string(voucher.Type),
		voucher.Narration,
		voucher.DebitAccount,
		voucher.CreditAccount,
		voucher.Amount,
		voucher.CreatedAt,
		voucher.CreatedBy,
		voucher.LastUpdatedAt,
		voucher.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: voucher number %q", apperrors.ErrDuplicate, voucher.VoucherNumber)
		}
		return fmt.Errorf("failed to save voucher: %w", err)
	}
	return nil
}

func (r *PgxVoucherRepository) scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var v domain.Voucher
	var vType string
	err := row.Scan(
		&v.VoucherID,
		&v.VoucherNumber,
		&v.Date,
		&vType,
		&v.Narration,
		&v.DebitAccount,
		&v.CreditAccount,
		&v.Amount,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan voucher: %w", err)
	}
	v.Type = domain.VoucherType(vType)
	return &v, nil
}

func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`
	return r.scanVoucher(r.pool.QueryRow(ctx, query, voucherID))
}

func (r *PgxVoucherRepository) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers ORDER BY voucher_date, created_at;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		voucher, err := r.scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, *voucher)
	}
	return vouchers, rows.Err()
}

func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
		UPDATE vouchers
		SET voucher_date = $2, voucher_type = $3, narration = $4, debit_account = $5, credit_account = $6, amount = $7, last_updated_at = $8, last_updated_by = $9
		WHERE voucher_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		voucher.VoucherID,
		voucher.Date,
		string(voucher.Type),
		voucher.Narration,
		voucher.DebitAccount,
		voucher.CreditAccount,
		voucher.Amount,
		voucher.LastUpdatedAt,
		voucher.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update voucher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1;`, voucherID)
	if err != nil {
		return fmt.Errorf("failed to delete voucher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVoucherRepository) CountByAccountName(ctx context.Context, name string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM vouchers WHERE debit_account = $1 OR credit_account = $1;`
	if err := r.pool.QueryRow(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count voucher references: %w", err)
	}
	return count, nil
}
