package renderer

import (
	"strings"
	"testing"

	"github.com/kmahajan/bahikhata"
)

func demoLedger(t *testing.T) *bahikhata.Ledger {
	t.Helper()
	l := bahikhata.NewLedger()
	l.SetAccount("Yogesh Ji", "Gurdaspuria")
	entries := []bahikhata.Entry{
		{Date: "04.12.2023", Particulars: "TO BILL NO-1085", Debit: "37000"},
		{Date: "08.01.2024", Particulars: "BY CHQ/CASH", Credit: "50000"},
		{Date: "03.01.2024", Particulars: "TO BILL NO-1234", Debit: "101000"},
	}
	for _, e := range entries {
		if _, err := l.Add(e); err != nil {
			t.Fatalf("cannot build demo ledger: %v", err)
		}
	}
	return l
}

func TestStatementMarkdown(t *testing.T) {
	s := bahikhata.Statement(demoLedger(t))
	got := StatementMarkdown(s)

	for _, want := range []string{
		"# ACCOUNT STATEMENT",
		"YOGESH JI GURDASPURIA",
		"DATE", "PARTICULARS", "DEBIT", "CREDIT", "BALANCE",
		"04.12.2023",
		"TO BILL NO-1085",
		"37,000.00",
		// Running balance after bill 1234: 37000+101000-50000 owed.
		"88,000.00 DR",
		"TOTAL",
		"1,38,000.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("statement misses %q:\n%s", want, got)
		}
	}
}

func TestStatementMarkdownEmpty(t *testing.T) {
	l := bahikhata.NewLedger()
	got := StatementMarkdown(bahikhata.Statement(l))

	if !strings.Contains(got, "ACCOUNT HOLDER NAME") {
		t.Errorf("empty statement misses the default heading:\n%s", got)
	}
	// The totals row still renders, all zero.
	if !strings.Contains(got, "0.00 CR") {
		t.Errorf("empty statement misses the zero balance:\n%s", got)
	}
}

func TestBalanceCell(t *testing.T) {
	if got, want := balanceCell(bahikhata.A(25000)), "25,000.00 CR"; got != want {
		t.Errorf("balanceCell = %q, want %q", got, want)
	}
	if got, want := balanceCell(bahikhata.A(-216146)), "2,16,146.00 DR"; got != want {
		t.Errorf("balanceCell = %q, want %q", got, want)
	}
	if got, want := balanceCell(bahikhata.A(0)), "0.00 CR"; got != want {
		t.Errorf("balanceCell = %q, want %q", got, want)
	}
}

func TestTransaction(t *testing.T) {
	l := demoLedger(t)
	var first bahikhata.Transaction
	for i, tx := range l.Transactions() {
		if i == 0 {
			first = tx
		}
	}
	got := Transaction(first)
	for _, want := range []string{"04.12.2023", "debit", "₹37,000.00", "TO BILL NO-1085"} {
		if !strings.Contains(got, want) {
			t.Errorf("Transaction() = %q, misses %q", got, want)
		}
	}
}
