package services

import (
	portsrepo "github.com/kasozib/bar_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/kasozib/bar_pos_backend/internal/core/ports/services"
	"github.com/kasozib/bar_pos_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:    NewAccountService(repos.AccountRepo, repos.VoucherRepo),
		Accounting: NewAccountingService(repos.AccountRepo, repos.SaleRepo, repos.ExpenseRepo, repos.VoucherRepo),
		Sale:       NewSaleService(repos.SaleRepo, repos.InventoryRepo),
		Expense:    NewExpenseService(repos.ExpenseRepo),
		Voucher:    NewVoucherService(repos.VoucherRepo, repos.AccountRepo),
		Inventory:  NewInventoryService(repos.InventoryRepo, repos.CategoryRepo),
		User:       NewUserService(repos.UserRepo, cfg),
		Shift:      NewShiftService(repos.ShiftRepo),
	}
}

// Compile-time checks that each service satisfies its facade.
var (
	_ portssvc.AccountSvcFacade    = (*AccountService)(nil)
	_ portssvc.AccountingSvcFacade = (*AccountingService)(nil)
	_ portssvc.SaleSvcFacade       = (*SaleService)(nil)
	_ portssvc.ExpenseSvcFacade    = (*ExpenseService)(nil)
	_ portssvc.VoucherSvcFacade    = (*VoucherService)(nil)
	_ portssvc.InventorySvcFacade  = (*InventoryService)(nil)
	_ portssvc.UserSvcFacade       = (*UserService)(nil)
	_ portssvc.ShiftSvcFacade      = (*ShiftService)(nil)
)
