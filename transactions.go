package bahikhata

import (
	"fmt"

	"github.com/google/uuid"
)

// Transaction is a single statement line: on a date, a description, and
// exactly one positive leg, debit or credit.
//
// A transaction is immutable once created: there is no edit operation, only
// delete by ID. The ID is opaque, minted at creation, and used only to
// identify the record for deletion.
type Transaction struct {
	ID          string `json:"id"`
	Date        Date   `json:"date"`
	Particulars string `json:"particulars"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// newTransaction mints a transaction from validated fields.
func newTransaction(day Date, particulars string, debit, credit Amount) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        day,
		Particulars: particulars,
		Debit:       debit,
		Credit:      credit,
	}
}

// Signed returns the transaction's contribution to the balance, credit minus debit.
func (t Transaction) Signed() Amount {
	return t.Credit.Sub(t.Debit)
}

// Equal reports whether two transactions carry the same statement line,
// ignoring the ID (IDs are regenerated on import).
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Particulars == o.Particulars &&
		t.Debit.Equal(o.Debit) &&
		t.Credit.Equal(o.Credit)
}

func (t Transaction) String() string {
	if t.Debit.IsPositive() {
		return fmt.Sprintf("%s %s debit %s", t.Date.Display(), t.Particulars, t.Debit.Display())
	}
	return fmt.Sprintf("%s %s credit %s", t.Date.Display(), t.Particulars, t.Credit.Display())
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping a stable field order in the backup file.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("particulars", t.Particulars)
	w.Append("debit", t.Debit)
	w.Append("credit", t.Credit)
	return w.MarshalJSON()
}
