package bahikhata

import (
	"iter"
	"sort"
)

// Account identifies whose statement this is.
type Account struct {
	Holder   string `json:"name"`
	Location string `json:"location"`
}

// Title returns the statement heading for the account, upper-cased the way
// the printed statement shows it.
func (a Account) Title() string {
	return statementTitle(a.Holder, a.Location)
}

// Ledger owns an ordered sequence of transactions for one account.
//
// The sequence is kept in insertion order, which is the chronological entry
// order and not necessarily sorted by date; the running-balance view sorts a
// copy on demand. All mutation goes through Add, Delete and Clear; no other
// component touches the sequence.
type Ledger struct {
	account      Account
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Account returns the account the ledger is kept for.
func (l *Ledger) Account() Account { return l.account }

// SetAccount records the account holder and location. Blank fields leave the
// current value untouched, so a partial update (say, from an extraction
// record that only carried a name) cannot erase the other field.
func (l *Ledger) SetAccount(holder, location string) {
	if holder != "" {
		l.account.Holder = holder
	}
	if location != "" {
		l.account.Location = location
	}
}

// Add validates a candidate entry and, on success, appends a new transaction
// with a freshly minted ID. On failure the violated rule is returned and the
// ledger is unchanged.
func (l *Ledger) Add(e Entry) (Transaction, error) {
	day, particulars, debit, credit, err := Validate(e)
	if err != nil {
		return Transaction{}, err
	}
	tx := newTransaction(day, particulars, debit, credit)
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// Delete removes the transaction with the given ID and reports whether it
// was found. Confirmation is the caller's concern, not the store's.
func (l *Ledger) Delete(id string) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the sequence. Irreversible.
func (l *Ledger) Clear() {
	l.transactions = l.transactions[:0]
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in its
// original insertion order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Totals are the ledger aggregates, recomputed from the full sequence.
type Totals struct {
	Debits  Amount
	Credits Amount
	Balance Amount // credits minus debits, sign kept
	Count   int
}

// Totals recomputes the aggregates from the current sequence.
func (l *Ledger) Totals() Totals {
	var t Totals
	for _, tx := range l.transactions {
		t.Debits = t.Debits.Add(tx.Debit)
		t.Credits = t.Credits.Add(tx.Credit)
	}
	t.Balance = t.Credits.Sub(t.Debits)
	t.Count = len(l.transactions)
	return t
}

// BalanceEntry is one row of the running-balance view.
type BalanceEntry struct {
	Transaction
	Balance Amount // balance after this transaction, sign kept
}

// RunningBalance returns the date-ordered running balance: transactions
// sorted by date ascending (stable, so equal dates keep their insertion
// order) with the prefix sum of credit minus debit after each row. The slice
// is built fresh on every call; it is never cached across mutations.
func (l *Ledger) RunningBalance() []BalanceEntry {
	sorted := make([]Transaction, len(l.transactions))
	copy(sorted, l.transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	entries := make([]BalanceEntry, len(sorted))
	var balance Amount
	for i, tx := range sorted {
		balance = balance.Add(tx.Signed())
		entries[i] = BalanceEntry{Transaction: tx, Balance: balance}
	}
	return entries
}
