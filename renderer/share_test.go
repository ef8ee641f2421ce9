package renderer

import (
	"strings"
	"testing"

	"github.com/kmahajan/bahikhata"
)

func TestShareText(t *testing.T) {
	s := bahikhata.Statement(demoLedger(t))
	got := ShareText(s)

	for _, want := range []string{
		"*ACCOUNT STATEMENT*",
		"*Account Holder:* YOGESH JI GURDASPURIA",
		"Total Entries: 3",
		"Total Debits: ₹1,38,000.00",
		"Total Credits: ₹50,000.00",
		"Current Balance: ₹88,000.00",
		"Status: Debit Balance",
		"*Recent Transactions:*",
		"BY CHQ/CASH",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("share text misses %q:\n%s", want, got)
		}
	}
}

// TestShareTextTail checks only the last five transactions appear.
func TestShareTextTail(t *testing.T) {
	l := bahikhata.NewLedger()
	dates := []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05", "2025-01-06", "2025-01-07"}
	for i, d := range dates {
		if _, err := l.Add(bahikhata.Entry{Date: d, Particulars: "ROW-" + d, Credit: "100"}); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	got := ShareText(bahikhata.Statement(l))
	if strings.Contains(got, "ROW-2025-01-02") {
		t.Errorf("share text carries more than the last five transactions:\n%s", got)
	}
	for _, want := range []string{"ROW-2025-01-03", "ROW-2025-01-07", "Total Entries: 7"} {
		if !strings.Contains(got, want) {
			t.Errorf("share text misses %q:\n%s", want, got)
		}
	}
}

func TestShareURL(t *testing.T) {
	s := bahikhata.Statement(demoLedger(t))
	got := ShareURL(s)

	if !strings.HasPrefix(got, "https://wa.me/?text=") {
		t.Errorf("ShareURL = %q, want a wa.me link", got)
	}
	if strings.ContainsAny(strings.TrimPrefix(got, "https://wa.me/?text="), " \n*") {
		t.Errorf("ShareURL payload is not percent-encoded: %q", got)
	}
}
