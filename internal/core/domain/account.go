package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Revenue   AccountType = "Revenue"
	AccountTypeExpense AccountType = "Expense"
)

// Valid reports whether t is one of the five recognised account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, AccountTypeExpense:
		return true
	}
	return false
}

// IsDebitNormal reports whether the account type carries its balance on the
// debit side. Asset and Expense accounts are debit-normal; Liability, Equity
// and Revenue accounts are credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == AccountTypeExpense
}

// Well-known account names the POS posts against. Sales, expenses and
// inventory movements always hit these ledgers; only vouchers may reference
// arbitrary accounts. Account names (not IDs) are the join key into postings.
const (
	AccountCashBank   = "Cash/Bank"
	AccountSales      = "Sales"
	AccountCOGS       = "Cost of Goods Sold"
	AccountInventory  = "Inventory"
	AccountReceivable = "Accounts Receivable"
	AccountPayable    = "Accounts Payable"
	AccountExpenses   = "Expenses"
)

// Account represents a ledger account in the chart of accounts.
// The name is the canonical identity transactions post against; two accounts
// must never share a name.
type Account struct {
	AccountID   string      `json:"accountID"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Description string      `json:"description"`
	AuditFields
}
