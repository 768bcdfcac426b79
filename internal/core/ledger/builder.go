package ledger

import (
	"sort"

	"github.com/kasozib/bar_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Build groups normalized transactions into per-account ledgers with running
// balances. Every registered account gets a ledger even when nothing posted
// to it; an account name referenced by a transaction but absent from the
// registry is not an error — it silently becomes an ad-hoc ledger with no
// registry metadata.
func Build(accounts []domain.Account, txns []domain.Transaction) map[string]domain.Ledger {
	ledgers := make(map[string]domain.Ledger, len(accounts))

	for i := range accounts {
		acc := accounts[i]
		ledgers[acc.Name] = domain.Ledger{Account: &acc, Balance: decimal.Zero}
	}

	appendPosting := func(name string, p domain.Posting) {
		l, ok := ledgers[name]
		if !ok {
			l = domain.Ledger{Balance: decimal.Zero}
		}
		l.Postings = append(l.Postings, p)
		ledgers[name] = l
	}

	for _, txn := range txns {
		appendPosting(txn.Debit.Account, domain.Posting{
			Date:          txn.Date,
			Side:          domain.DebitSide,
			Amount:        txn.Debit.Amount,
			Narration:     txn.Narration,
			Source:        txn.Source,
			SourceID:      txn.SourceID,
			VoucherNumber: txn.VoucherNumber,
		})
		appendPosting(txn.Credit.Account, domain.Posting{
			Date:          txn.Date,
			Side:          domain.CreditSide,
			Amount:        txn.Credit.Amount,
			Narration:     txn.Narration,
			Source:        txn.Source,
			SourceID:      txn.SourceID,
			VoucherNumber: txn.VoucherNumber,
		})
	}

	for name, l := range ledgers {
		// Stable sort keeps insertion order as the tie-break so running
		// balances are reproducible across invocations.
		sort.SliceStable(l.Postings, func(i, j int) bool {
			return l.Postings[i].Date.Before(l.Postings[j].Date)
		})

		balance := decimal.Zero
		for i := range l.Postings {
			if l.Postings[i].Side == domain.DebitSide {
				balance = balance.Add(l.Postings[i].Amount)
			} else {
				balance = balance.Sub(l.Postings[i].Amount)
			}
			l.Postings[i].Balance = balance
		}
		l.Balance = balance
		ledgers[name] = l
	}

	return ledgers
}
