package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		SaleRepo:      newPgxSaleRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		VoucherRepo:   newPgxVoucherRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		CategoryRepo:  newPgxCategoryRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ShiftRepo:     newPgxShiftRepository(dbPool),
	}
}
