package ledger

import (
	"fmt"
	"time"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// Normalize converts the snapshot's raw events into uniform double-entry
// transactions. Vouchers come first, then sales, then expenses; the builder's
// stable sort makes that emission order the tie-break for same-date postings.
//
// Every sale posts at creation time with the debit leg chosen by payment
// method: credit sales debit Accounts Receivable, everything else debits
// Cash/Bank. Marking a credit sale paid later never re-posts. Zero-amount
// events still emit transactions; they are not filtered here.
func Normalize(snap Snapshot) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(snap.Vouchers)+2*len(snap.Sales)+len(snap.Expenses))

	for _, v := range snap.Vouchers {
		txns = append(txns, normalizeVoucher(v))
	}
	for _, s := range snap.Sales {
		txns = append(txns, normalizeSale(s)...)
	}
	for _, e := range snap.Expenses {
		txns = append(txns, normalizeExpense(e))
	}

	return txns
}

// normalizeSale emits the revenue transaction and its cost-of-goods
// counterpart.
func normalizeSale(s domain.Sale) []domain.Transaction {
	debitAccount := domain.AccountCashBank
	if s.PaymentMethod == domain.PaymentCredit {
		debitAccount = domain.AccountReceivable
	}

	date := dateOnly(s.CreatedAt)
	cost := s.CostOfGoods()

	revenue := domain.Transaction{
		Date:      date,
		Narration: fmt.Sprintf("Sale #%s", s.ReceiptNumber),
		Source:    domain.SourceSale,
		SourceID:  s.SaleID,
		Debit:     domain.Leg{Account: debitAccount, Amount: s.Total},
		Credit:    domain.Leg{Account: domain.AccountSales, Amount: s.Total},
	}
	cogs := domain.Transaction{
		Date:      date,
		Narration: fmt.Sprintf("COGS for Sale #%s", s.ReceiptNumber),
		Source:    domain.SourceSale,
		SourceID:  s.SaleID,
		Debit:     domain.Leg{Account: domain.AccountCOGS, Amount: cost},
		Credit:    domain.Leg{Account: domain.AccountInventory, Amount: cost},
	}
	return []domain.Transaction{revenue, cogs}
}

func normalizeExpense(e domain.Expense) domain.Transaction {
	return domain.Transaction{
		Date:      dateOnly(e.CreatedAt),
		Narration: e.Description,
		Source:    domain.SourceExpense,
		SourceID:  e.ExpenseID,
		Debit:     domain.Leg{Account: domain.AccountExpenses, Amount: e.Amount},
		Credit:    domain.Leg{Account: domain.AccountCashBank, Amount: e.Amount},
	}
}

func normalizeVoucher(v domain.Voucher) domain.Transaction {
	return domain.Transaction{
		Date:          dateOnly(v.Date),
		Narration:     v.Narration,
		Source:        domain.SourceVoucher,
		SourceID:      v.VoucherID,
		VoucherNumber: v.VoucherNumber,
		Debit:         domain.Leg{Account: v.DebitAccount, Amount: v.Amount},
		Credit:        domain.Leg{Account: v.CreditAccount, Amount: v.Amount},
	}
}

// dateOnly truncates a timestamp to its calendar day. Postings are ordered by
// day, not by intra-day time, so same-day events keep their emission order.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
