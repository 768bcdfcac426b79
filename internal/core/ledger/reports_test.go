package ledger_test

import (
	"testing"
	"time"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/kasozib/bar_pos_backend/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartOfAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "1", Name: domain.AccountCashBank, Type: domain.Asset},
		{AccountID: "2", Name: domain.AccountReceivable, Type: domain.Asset},
		{AccountID: "3", Name: domain.AccountInventory, Type: domain.Asset},
		{AccountID: "4", Name: domain.AccountPayable, Type: domain.Liability},
		{AccountID: "5", Name: "Owner Capital", Type: domain.Equity},
		{AccountID: "6", Name: domain.AccountSales, Type: domain.Revenue},
		{AccountID: "7", Name: domain.AccountCOGS, Type: domain.AccountTypeExpense},
		{AccountID: "8", Name: domain.AccountExpenses, Type: domain.AccountTypeExpense},
	}
}

func deriveAll(snap ledger.Snapshot) map[string]domain.Ledger {
	return ledger.Build(snap.Accounts, ledger.Normalize(snap))
}

func TestTrialBalance_MixedAccountTypesBalance(t *testing.T) {
	snap := ledger.Snapshot{
		Accounts: chartOfAccounts(),
		Vouchers: []domain.Voucher{
			{VoucherID: "v1", Date: day(2025, time.July, 1), Type: domain.VoucherReceipt, Narration: "Capital injection", DebitAccount: domain.AccountCashBank, CreditAccount: "Owner Capital", Amount: dec("1000000")},
			{VoucherID: "v2", Date: day(2025, time.July, 2), Type: domain.VoucherJournal, Narration: "Stock on credit", DebitAccount: domain.AccountInventory, CreditAccount: domain.AccountPayable, Amount: dec("400000")},
		},
		Sales: []domain.Sale{
			{SaleID: "s1", ReceiptNumber: "R1", Total: dec("250000"), TotalCost: dec("150000"), PaymentMethod: domain.PaymentCash, CreatedAt: day(2025, time.July, 3)},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Description: "Rent", Amount: dec("80000"), CreatedAt: day(2025, time.July, 4)},
		},
	}

	tb := ledger.TrialBalance(deriveAll(snap))

	assert.True(t, tb.Balanced, "difference was %s", tb.Difference)
	assert.True(t, tb.Totals.Debit.Equal(tb.Totals.Credit),
		"total debit %s != total credit %s", tb.Totals.Debit, tb.Totals.Credit)

	sales := tb.Accounts[domain.AccountSales]
	assertAmount(t, "250000", sales.Credit)
	assert.True(t, sales.Debit.IsZero())

	cash := tb.Accounts[domain.AccountCashBank]
	assertAmount(t, "1170000", cash.Debit)
}

func TestTrialBalance_NegativeNormalBalanceFlipsColumn(t *testing.T) {
	// Inventory is an asset, but selling goods never purchased drives it
	// credit-heavy; the absolute value must land in the credit column.
	snap := ledger.Snapshot{
		Accounts: chartOfAccounts(),
		Sales: []domain.Sale{
			{SaleID: "s1", ReceiptNumber: "R1", Total: dec("100"), TotalCost: dec("60"), PaymentMethod: domain.PaymentCash, CreatedAt: day(2025, time.July, 1)},
		},
	}

	tb := ledger.TrialBalance(deriveAll(snap))
	inv := tb.Accounts[domain.AccountInventory]
	assert.True(t, inv.Debit.IsZero())
	assertAmount(t, "60", inv.Credit)
	assert.True(t, tb.Balanced)
}

func TestTrialBalance_OmitsZeroBalances(t *testing.T) {
	snap := ledger.Snapshot{Accounts: chartOfAccounts()}
	tb := ledger.TrialBalance(deriveAll(snap))
	assert.Empty(t, tb.Accounts)
}

func TestTrialBalance_UnregisteredAccountsTreatedDebitNormal(t *testing.T) {
	snap := ledger.Snapshot{
		Vouchers: []domain.Voucher{
			{VoucherID: "v1", Date: day(2025, time.July, 1), Type: domain.VoucherJournal, Narration: "Drawings", DebitAccount: "Drawings", CreditAccount: "Cash/Bank", Amount: dec("5000")},
		},
	}

	tb := ledger.TrialBalance(deriveAll(snap))

	drawings := tb.Accounts["Drawings"]
	assertAmount(t, "5000", drawings.Debit)
	// Cash/Bank is also unregistered here; its negative balance flips.
	cash := tb.Accounts["Cash/Bank"]
	assertAmount(t, "5000", cash.Credit)
	assert.True(t, tb.Balanced)
}

func TestReports_EmptySnapshot(t *testing.T) {
	ledgers := deriveAll(ledger.Snapshot{})

	tb := ledger.TrialBalance(ledgers)
	assert.True(t, tb.Balanced, "0 == 0 is balanced")
	assert.True(t, tb.Totals.Debit.IsZero())
	assert.True(t, tb.Totals.Credit.IsZero())

	pl := ledger.ProfitAndLoss(ledgers)
	assert.True(t, pl.Revenue.IsZero())
	assert.True(t, pl.NetProfit.IsZero())

	bs := ledger.BalanceSheet(ledgers)
	assert.True(t, bs.Assets.Total.IsZero())
	assert.True(t, bs.Liabilities.Total.IsZero())
	assert.True(t, bs.Equity.Total.IsZero())
}

func TestProfitAndLoss_EndToEnd(t *testing.T) {
	snap := ledger.Snapshot{
		Accounts: chartOfAccounts(),
		Sales: []domain.Sale{
			{SaleID: "s1", ReceiptNumber: "R1", Total: dec("100"), TotalCost: dec("60"), PaymentMethod: domain.PaymentCash, CreatedAt: day(2025, time.July, 1)},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Description: "Transport", Amount: dec("10"), CreatedAt: day(2025, time.July, 1)},
		},
	}

	pl := ledger.ProfitAndLoss(deriveAll(snap))

	assertAmount(t, "100", pl.Revenue)
	assertAmount(t, "60", pl.CostOfGoodsSold)
	assertAmount(t, "40", pl.GrossProfit)
	assertAmount(t, "10", pl.OperatingExpenses)
	assertAmount(t, "30", pl.NetProfit)
}

func TestProfitAndLoss_MissingLedgersDefaultToZero(t *testing.T) {
	pl := ledger.ProfitAndLoss(map[string]domain.Ledger{})
	assert.True(t, pl.Revenue.IsZero())
	assert.True(t, pl.CostOfGoodsSold.IsZero())
	assert.True(t, pl.OperatingExpenses.IsZero())
}

func TestBalanceSheet_FundamentalIdentity(t *testing.T) {
	snap := ledger.Snapshot{
		Accounts: chartOfAccounts(),
		Vouchers: []domain.Voucher{
			{VoucherID: "v1", Date: day(2025, time.July, 1), Type: domain.VoucherJournal, Narration: "Stock on credit", DebitAccount: domain.AccountInventory, CreditAccount: domain.AccountPayable, Amount: dec("500000")},
		},
		Sales: []domain.Sale{
			{SaleID: "s1", ReceiptNumber: "R1", Total: dec("250000"), TotalCost: dec("150000"), PaymentMethod: domain.PaymentCash, CreatedAt: day(2025, time.July, 2)},
			{SaleID: "s2", ReceiptNumber: "R2", Total: dec("90000"), TotalCost: dec("40000"), PaymentMethod: domain.PaymentCredit, CreatedAt: day(2025, time.July, 3)},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Description: "Rent", Amount: dec("70000"), CreatedAt: day(2025, time.July, 4)},
		},
	}

	ledgers := deriveAll(snap)
	bs := ledger.BalanceSheet(ledgers)
	pl := ledger.ProfitAndLoss(ledgers)

	rhs := bs.Liabilities.Total.Add(bs.Equity.Total)
	assert.True(t, bs.Assets.Total.Equal(rhs),
		"assets %s != liabilities %s + equity %s", bs.Assets.Total, bs.Liabilities.Total, bs.Equity.Total)
	assert.True(t, bs.Equity.RetainedEarnings.Equal(pl.NetProfit),
		"retained earnings %s disagrees with net profit %s", bs.Equity.RetainedEarnings, pl.NetProfit)

	assertAmount(t, "90000", bs.Assets.AccountsReceivable)
	assertAmount(t, "500000", bs.Liabilities.AccountsPayable)
}

// Marking a credit sale paid changes its status only; re-deriving the ledgers
// must not move the receivable or add postings.
func TestCreditSale_MarkPaidDoesNotRepost(t *testing.T) {
	sale := domain.Sale{
		SaleID:        "s1",
		ReceiptNumber: "R1",
		Total:         dec("50000"),
		TotalCost:     dec("20000"),
		PaymentMethod: domain.PaymentCredit,
		Status:        domain.SaleUnpaid,
		CreatedAt:     day(2025, time.July, 1),
	}
	before := deriveAll(ledger.Snapshot{Accounts: chartOfAccounts(), Sales: []domain.Sale{sale}})

	sale.Status = domain.SalePaid
	after := deriveAll(ledger.Snapshot{Accounts: chartOfAccounts(), Sales: []domain.Sale{sale}})

	require.Len(t, after[domain.AccountReceivable].Postings, 1)
	assert.Equal(t, before[domain.AccountReceivable].Postings, after[domain.AccountReceivable].Postings)
	assert.True(t, before[domain.AccountReceivable].Balance.Equal(after[domain.AccountReceivable].Balance))
	assert.Empty(t, after[domain.AccountCashBank].Postings, "settlement is not auto-posted")
}

// Same snapshot in, identical reports out.
func TestReports_Idempotent(t *testing.T) {
	snap := ledger.Snapshot{
		Accounts: chartOfAccounts(),
		Sales: []domain.Sale{
			{SaleID: "s1", ReceiptNumber: "R1", Total: dec("123.45"), TotalCost: dec("67.89"), PaymentMethod: domain.PaymentCard, CreatedAt: day(2025, time.July, 1)},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Description: "Ice", Amount: dec("12.30"), CreatedAt: day(2025, time.July, 2)},
		},
		Vouchers: []domain.Voucher{
			{VoucherID: "v1", Date: day(2025, time.July, 3), Type: domain.VoucherContra, Narration: "Bank to till", DebitAccount: "Petty Cash", CreditAccount: domain.AccountCashBank, Amount: dec("40")},
		},
	}

	first := deriveAll(snap)
	second := deriveAll(snap)

	assert.Equal(t, first, second)
	assert.Equal(t, ledger.TrialBalance(first), ledger.TrialBalance(second))
	assert.Equal(t, ledger.ProfitAndLoss(first), ledger.ProfitAndLoss(second))
	assert.Equal(t, ledger.BalanceSheet(first), ledger.BalanceSheet(second))
}

func TestDayBook_ChronologicalStableOrder(t *testing.T) {
	d := day(2025, time.July, 2)
	txns := []domain.Transaction{
		txn(day(2025, time.July, 3), "A", "B", "1", "later"),
		txn(d, "A", "B", "2", "same-day first"),
		txn(d, "A", "B", "3", "same-day second"),
		txn(day(2025, time.July, 1), "A", "B", "4", "earliest"),
	}

	book := ledger.DayBook(txns)
	require.Len(t, book, 4)
	assert.Equal(t, "earliest", book[0].Narration)
	assert.Equal(t, "same-day first", book[1].Narration)
	assert.Equal(t, "same-day second", book[2].Narration)
	assert.Equal(t, "later", book[3].Narration)

	// input slice is left untouched
	assert.Equal(t, "later", txns[0].Narration)
}
