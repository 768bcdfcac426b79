// Package ledger derives double-entry ledgers and financial reports from the
// raw business events of the POS: sales, expenses and manually entered
// vouchers. Everything in this package is a pure function of its inputs —
// no I/O, no shared state — so concurrent invocations with different
// snapshots never interfere. The surrounding services are responsible for
// supplying a consistent point-in-time snapshot.
package ledger

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// Snapshot is a point-in-time view of everything the derivation consumes.
type Snapshot struct {
	Accounts []domain.Account
	Sales    []domain.Sale
	Expenses []domain.Expense
	Vouchers []domain.Voucher
}
