package services

import (
	"context"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/kasozib/bar_pos_backend/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountingSvcFacade derives ledgers and financial reports from a
// point-in-time snapshot of sales, expenses and vouchers.
type AccountingSvcFacade interface {
	Ledgers(ctx context.Context) (map[string]domain.Ledger, error)
	DayBook(ctx context.Context) ([]domain.Transaction, error)
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
	ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLoss, error)
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)
}

// SaleSvcFacade exposes checkout and settlement operations.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, cashierUserID string) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	MarkSalePaid(ctx context.Context, saleID string, updaterUserID string) (*domain.Sale, error)
}

// ExpenseSvcFacade exposes expense capture operations.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// VoucherSvcFacade exposes manual voucher entry operations.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, updaterUserID string) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, voucherID string) error
}

// InventorySvcFacade exposes stock and category operations.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string) error
	SetStock(ctx context.Context, itemID string, quantity int, updaterUserID string) error
	AdjustStock(ctx context.Context, itemID string, delta int, updaterUserID string) (int, error)
	ListLowStock(ctx context.Context) ([]domain.InventoryItem, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// UserSvcFacade exposes staff management and authentication.
type UserSvcFacade interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error)
	Register(ctx context.Context, req dto.RegisterRequest, creatorUserID string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeactivateUser(ctx context.Context, userID string, updaterUserID string) error
}

// ShiftSvcFacade exposes cashier shift operations.
type ShiftSvcFacade interface {
	OpenShift(ctx context.Context, req dto.OpenShiftRequest) (*domain.Shift, error)
	CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest) (*domain.Shift, error)
	ListShifts(ctx context.Context) ([]domain.Shift, error)
}

// ServiceContainer groups all service facades for handler registration.
type ServiceContainer struct {
	Account    AccountSvcFacade
	Accounting AccountingSvcFacade
	Sale       SaleSvcFacade
	Expense    ExpenseSvcFacade
	Voucher    VoucherSvcFacade
	Inventory  InventorySvcFacade
	User       UserSvcFacade
	Shift      ShiftSvcFacade
}
