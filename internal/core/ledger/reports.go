package ledger

import (
	"sort"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// balanceTolerance absorbs residual rounding error when checking whether the
// trial balance columns agree.
var balanceTolerance = decimal.New(1, -2) // 0.01

// TrialBalance classifies every non-zero ledger balance into a debit or
// credit column by the account's normal side. Asset and Expense accounts are
// debit-normal; Liability, Equity and Revenue are credit-normal. A positive
// normal-side balance lands in its normal column, a negative one flips to the
// opposite column as an absolute value. Accounts without registry metadata
// are treated as debit-normal.
func TrialBalance(ledgers map[string]domain.Ledger) domain.TrialBalance {
	rows := make(map[string]domain.TrialBalanceRow)
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for name, l := range ledgers {
		balance := normalSideBalance(l)
		switch {
		case balance.IsPositive():
			if isDebitNormal(l) {
				rows[name] = domain.TrialBalanceRow{Debit: balance, Credit: decimal.Zero}
				totalDebit = totalDebit.Add(balance)
			} else {
				rows[name] = domain.TrialBalanceRow{Debit: decimal.Zero, Credit: balance}
				totalCredit = totalCredit.Add(balance)
			}
		case balance.IsNegative():
			abs := balance.Neg()
			if isDebitNormal(l) {
				rows[name] = domain.TrialBalanceRow{Debit: decimal.Zero, Credit: abs}
				totalCredit = totalCredit.Add(abs)
			} else {
				rows[name] = domain.TrialBalanceRow{Debit: abs, Credit: decimal.Zero}
				totalDebit = totalDebit.Add(abs)
			}
		}
	}

	diff := totalDebit.Sub(totalCredit)
	return domain.TrialBalance{
		Accounts:   rows,
		Totals:     domain.TrialBalanceRow{Debit: totalDebit, Credit: totalCredit},
		Balanced:   diff.Abs().LessThan(balanceTolerance),
		Difference: diff,
	}
}

// ProfitAndLoss summarises the trading accounts. Missing ledgers contribute
// zero. Balances are taken on each account's normal side, so revenue comes
// out positive for a credit-heavy Sales ledger.
func ProfitAndLoss(ledgers map[string]domain.Ledger) domain.ProfitAndLoss {
	revenue := creditBalance(ledgers, domain.AccountSales)
	cogs := debitBalance(ledgers, domain.AccountCOGS)
	grossProfit := revenue.Sub(cogs)
	operatingExpenses := debitBalance(ledgers, domain.AccountExpenses)

	return domain.ProfitAndLoss{
		Revenue:           revenue,
		CostOfGoodsSold:   cogs,
		GrossProfit:       grossProfit,
		OperatingExpenses: operatingExpenses,
		NetProfit:         grossProfit.Sub(operatingExpenses),
	}
}

// BalanceSheet derives the statement of financial position. Retained earnings
// are recomputed from the trading ledgers rather than copied from a prior
// P&L run, and liabilities total excludes equity; the fundamental identity
// assets == liabilities + equity is the invariant callers may rely on.
func BalanceSheet(ledgers map[string]domain.Ledger) domain.BalanceSheet {
	assets := domain.BalanceSheetAssets{
		CashAndBank:        debitBalance(ledgers, domain.AccountCashBank),
		AccountsReceivable: debitBalance(ledgers, domain.AccountReceivable),
		Inventory:          debitBalance(ledgers, domain.AccountInventory),
	}
	assets.Total = assets.CashAndBank.Add(assets.AccountsReceivable).Add(assets.Inventory)

	liabilities := domain.BalanceSheetLiabilities{
		AccountsPayable: creditBalance(ledgers, domain.AccountPayable),
	}
	liabilities.Total = liabilities.AccountsPayable

	retained := creditBalance(ledgers, domain.AccountSales).
		Sub(debitBalance(ledgers, domain.AccountCOGS)).
		Sub(debitBalance(ledgers, domain.AccountExpenses))
	equity := domain.BalanceSheetEquity{
		RetainedEarnings: retained,
		Total:            retained,
	}

	return domain.BalanceSheet{Assets: assets, Liabilities: liabilities, Equity: equity}
}

// DayBook returns all transactions in chronological order, ties kept in
// emission order.
func DayBook(txns []domain.Transaction) []domain.Transaction {
	book := make([]domain.Transaction, len(txns))
	copy(book, txns)
	sort.SliceStable(book, func(i, j int) bool {
		return book[i].Date.Before(book[j].Date)
	})
	return book
}

func isDebitNormal(l domain.Ledger) bool {
	if l.Account == nil {
		return true
	}
	return l.Account.Type.IsDebitNormal()
}

// normalSideBalance converts the ledger's debit-positive closing balance to
// the account's normal-side convention.
func normalSideBalance(l domain.Ledger) decimal.Decimal {
	if isDebitNormal(l) {
		return l.Balance
	}
	return l.Balance.Neg()
}

// debitBalance returns the named ledger's closing balance in the
// debit-positive convention, zero when the ledger is missing.
func debitBalance(ledgers map[string]domain.Ledger, name string) decimal.Decimal {
	l, ok := ledgers[name]
	if !ok {
		return decimal.Zero
	}
	return l.Balance
}

// creditBalance is debitBalance with the sign flipped, for accounts whose
// balance conventionally sits on the credit side.
func creditBalance(ledgers map[string]domain.Ledger, name string) decimal.Decimal {
	return debitBalance(ledgers, name).Neg()
}
