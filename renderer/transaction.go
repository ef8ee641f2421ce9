package renderer

import (
	"fmt"

	"github.com/kmahajan/bahikhata"
)

// Transaction renders a transaction to a one-line string, for confirmations
// and logs.
func Transaction(tx bahikhata.Transaction) string {
	switch {
	case tx.Debit.IsPositive():
		return fmt.Sprintf("%s debit %s for %s", tx.Date.Display(), tx.Debit.Display(), tx.Particulars)
	case tx.Credit.IsPositive():
		return fmt.Sprintf("%s credit %s for %s", tx.Date.Display(), tx.Credit.Display(), tx.Particulars)
	default:
		return fmt.Sprintf("%s %s", tx.Date.Display(), tx.Particulars)
	}
}

// Totals renders the ledger aggregates to a compact summary block.
func Totals(t bahikhata.Totals) string {
	status := "Credit Balance"
	if t.Balance.IsNegative() {
		status = "Debit Balance"
	}
	return fmt.Sprintf("Entries: %d\nTotal Debits: %s\nTotal Credits: %s\nBalance: %s (%s)\n",
		t.Count, t.Debits.Display(), t.Credits.Display(), t.Balance.Abs().Display(), status)
}
