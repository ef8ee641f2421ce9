package bahikhata

import "testing"

func TestSampleLedger(t *testing.T) {
	l := SampleLedger()

	if got, want := l.Account().Title(), "YOGESH JI GURDASPURIA"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if l.Len() != 34 {
		t.Errorf("Len() = %d, want 34", l.Len())
	}

	totals := l.Totals()
	if !totals.Debits.Equal(totals.Credits.Sub(totals.Balance)) {
		t.Errorf("totals do not add up: %+v", totals)
	}

	// The demo data ends owing money, the balance is a debit one.
	if !totals.Balance.IsNegative() {
		t.Errorf("Balance = %v, want negative", totals.Balance)
	}

	// Every sample call mints fresh ids, two ledgers never collide.
	other := SampleLedger()
	ids := make(map[string]bool)
	for _, tx := range l.Transactions() {
		ids[tx.ID] = true
	}
	for _, tx := range other.Transactions() {
		if ids[tx.ID] {
			t.Fatalf("id %q shared between two sample ledgers", tx.ID)
		}
	}
}
