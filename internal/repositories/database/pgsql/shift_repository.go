package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasozib/bar_pos_backend/internal/apperrors"
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
)

type PgxShiftRepository struct {
	pool *pgxpool.Pool
}

func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepository {
	return &PgxShiftRepository{pool: pool}
}

var _ portsrepo.ShiftRepository = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, cashier_name, opening_float, closing_float, started_at, ended_at`

func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		shift.ShiftID,
		shift.CashierName,
		shift.OpeningFloat,
		shift.ClosingFloat,
		shift.StartedAt,
		shift.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	return nil
}

func (r *PgxShiftRepository) scanShift(row pgx.Row) (*domain.Shift, error) {
	var s domain.Shift
	err := row.Scan(
		&s.ShiftID,
		&s.CashierName,
		&s.OpeningFloat,
		&s.ClosingFloat,
		&s.StartedAt,
		&s.EndedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan shift: %w", err)
	}
	return &s, nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`
	return r.scanShift(r.pool.QueryRow(ctx, query, shiftID))
}

func (r *PgxShiftRepository) FindOpenShiftByCashier(ctx context.Context, cashierName string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE cashier_name = $1 AND ended_at IS NULL;`
	return r.scanShift(r.pool.QueryRow(ctx, query, cashierName))
}

func (r *PgxShiftRepository) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY started_at DESC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []domain.Shift
	for rows.Next() {
		shift, err := r.scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *shift)
	}
	return shifts, rows.Err()
}

func (r *PgxShiftRepository) UpdateShift(ctx context.Context, shift domain.Shift) error {
	query := `
		UPDATE shifts
		SET closing_float = $2, ended_at = $3
		WHERE shift_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, shift.ShiftID, shift.ClosingFloat, shift.EndedAt)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
