package ledger_test

import (
	"testing"
	"time"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/kasozib/bar_pos_backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txn builds a single-purpose transaction for builder tests.
func txn(date time.Time, debitAcc, creditAcc, amount, narration string) domain.Transaction {
	return domain.Transaction{
		Date:      date,
		Narration: narration,
		Source:    domain.SourceVoucher,
		Debit:     domain.Leg{Account: debitAcc, Amount: dec(amount)},
		Credit:    domain.Leg{Account: creditAcc, Amount: dec(amount)},
	}
}

func TestBuild_RunningBalances(t *testing.T) {
	// debit 100, credit 30, debit 20 in date order -> 100, 70, 90
	txns := []domain.Transaction{
		txn(day(2025, time.June, 1), "Cash/Bank", "Capital", "100", "opening"),
		txn(day(2025, time.June, 2), "Drawings", "Cash/Bank", "30", "drawing"),
		txn(day(2025, time.June, 3), "Cash/Bank", "Sales", "20", "sale"),
	}

	ledgers := ledger.Build(nil, txns)
	cash, ok := ledgers["Cash/Bank"]
	require.True(t, ok)
	require.Len(t, cash.Postings, 3)

	assertAmount(t, "100", cash.Postings[0].Balance)
	assertAmount(t, "70", cash.Postings[1].Balance)
	assertAmount(t, "90", cash.Postings[2].Balance)
	assertAmount(t, "90", cash.Balance)
}

func TestBuild_SeedsRegisteredAccounts(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "1", Name: "Cash/Bank", Type: domain.Asset},
		{AccountID: "2", Name: "Sales", Type: domain.Revenue},
	}

	ledgers := ledger.Build(accounts, nil)
	require.Len(t, ledgers, 2)

	cash := ledgers["Cash/Bank"]
	require.NotNil(t, cash.Account)
	assert.Equal(t, domain.Asset, cash.Account.Type)
	assert.Empty(t, cash.Postings)
	assert.True(t, cash.Balance.IsZero(), "an account with no postings closes at zero")
}

func TestBuild_AutoCreatesUnregisteredAccounts(t *testing.T) {
	txns := []domain.Transaction{
		txn(day(2025, time.June, 1), "Petty Cash", "Cash/Bank", "50", "float top-up"),
	}

	ledgers := ledger.Build(nil, txns)
	petty, ok := ledgers["Petty Cash"]
	require.True(t, ok, "unregistered account names silently become ad-hoc ledgers")
	assert.Nil(t, petty.Account)
	assertAmount(t, "50", petty.Balance)
}

func TestBuild_SameDatePostingsKeepEmissionOrder(t *testing.T) {
	d := day(2025, time.June, 10)
	txns := []domain.Transaction{
		txn(d, "Cash/Bank", "Sales", "10", "first"),
		txn(d, "Cash/Bank", "Sales", "20", "second"),
		txn(d, "Drawings", "Cash/Bank", "5", "third"),
	}

	ledgers := ledger.Build(nil, txns)
	cash := ledgers["Cash/Bank"]
	require.Len(t, cash.Postings, 3)
	assert.Equal(t, "first", cash.Postings[0].Narration)
	assert.Equal(t, "second", cash.Postings[1].Narration)
	assert.Equal(t, "third", cash.Postings[2].Narration)
	assertAmount(t, "10", cash.Postings[0].Balance)
	assertAmount(t, "30", cash.Postings[1].Balance)
	assertAmount(t, "25", cash.Postings[2].Balance)
}

// Across the whole ledger map the debit and credit posting totals must agree,
// which is the same as all closing balances summing to zero.
func TestBuild_BalanceConservation(t *testing.T) {
	snap := ledger.Snapshot{
		Accounts: []domain.Account{
			{AccountID: "1", Name: "Cash/Bank", Type: domain.Asset},
			{AccountID: "2", Name: "Sales", Type: domain.Revenue},
		},
		Sales: []domain.Sale{
			{SaleID: "s1", ReceiptNumber: "R1", Total: dec("120"), TotalCost: dec("80"), PaymentMethod: domain.PaymentCash, CreatedAt: day(2025, time.June, 2)},
			{SaleID: "s2", ReceiptNumber: "R2", Total: dec("45.50"), TotalCost: dec("20.25"), PaymentMethod: domain.PaymentCredit, CreatedAt: day(2025, time.June, 3)},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Description: "Airtime", Amount: dec("9.99"), CreatedAt: day(2025, time.June, 4)},
		},
		Vouchers: []domain.Voucher{
			{VoucherID: "v1", Date: day(2025, time.June, 1), Type: domain.VoucherReceipt, DebitAccount: "Cash/Bank", CreditAccount: "Owner Capital", Amount: dec("1000")},
		},
	}

	ledgers := ledger.Build(snap.Accounts, ledger.Normalize(snap))

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	sumBalances := decimal.Zero
	for _, l := range ledgers {
		for _, p := range l.Postings {
			if p.Side == domain.DebitSide {
				totalDebits = totalDebits.Add(p.Amount)
			} else {
				totalCredits = totalCredits.Add(p.Amount)
			}
		}
		sumBalances = sumBalances.Add(l.Balance)
	}

	assert.True(t, totalDebits.Equal(totalCredits), "debits %s != credits %s", totalDebits, totalCredits)
	assert.True(t, sumBalances.IsZero(), "closing balances sum to %s", sumBalances)
}
