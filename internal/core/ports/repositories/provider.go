package repositories

// RepositoryProvider groups all repository implementations for service wiring.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	SaleRepo      SaleRepository
	ExpenseRepo   ExpenseRepository
	VoucherRepo   VoucherRepository
	InventoryRepo InventoryRepository
	CategoryRepo  CategoryRepository
	UserRepo      UserRepository
	ShiftRepo     ShiftRepository
}
