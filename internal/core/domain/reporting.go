package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow holds the debit/credit column values for one account.
type TrialBalanceRow struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with a non-zero balance sorted into
// debit/credit columns. Balanced is true when the column totals agree within
// the money-rounding tolerance; Difference carries the numeric gap so callers
// can decide how to react to an imbalance.
type TrialBalance struct {
	Accounts   map[string]TrialBalanceRow `json:"accounts"`
	Totals     TrialBalanceRow            `json:"totals"`
	Balanced   bool                       `json:"balanced"`
	Difference decimal.Decimal            `json:"difference"`
}

// ProfitAndLoss is the trading account summary derived from the Sales,
// Cost of Goods Sold and Expenses ledgers.
type ProfitAndLoss struct {
	Revenue           decimal.Decimal `json:"revenue"`
	CostOfGoodsSold   decimal.Decimal `json:"costOfGoodsSold"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// BalanceSheetAssets groups the asset side of the balance sheet.
type BalanceSheetAssets struct {
	CashAndBank        decimal.Decimal `json:"cashAndBank"`
	AccountsReceivable decimal.Decimal `json:"accountsReceivable"`
	Inventory          decimal.Decimal `json:"inventory"`
	Total              decimal.Decimal `json:"total"`
}

// BalanceSheetLiabilities groups the liability side of the balance sheet.
type BalanceSheetLiabilities struct {
	AccountsPayable decimal.Decimal `json:"accountsPayable"`
	Total           decimal.Decimal `json:"total"`
}

// BalanceSheetEquity carries retained earnings, recomputed independently of
// the profit and loss report. The two must agree.
type BalanceSheetEquity struct {
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	Total            decimal.Decimal `json:"total"`
}

// BalanceSheet satisfies the fundamental identity
// Assets.Total == Liabilities.Total + Equity.Total for any consistent input.
type BalanceSheet struct {
	Assets      BalanceSheetAssets      `json:"assets"`
	Liabilities BalanceSheetLiabilities `json:"liabilities"`
	Equity      BalanceSheetEquity      `json:"equity"`
}
