package bahikhata

import (
	"strings"
	"time"
)

// Row is one line of a statement snapshot.
type Row struct {
	Date        Date
	Particulars string
	Debit       Amount
	Credit      Amount
	Balance     Amount // running balance after this row, sign kept
}

// StatementSnapshot is the point-in-time view handed to the presentation
// layer (terminal rendering, share text). It is a copy: mutating the ledger
// after taking a snapshot does not change an already-captured one.
type StatementSnapshot struct {
	AccountHolder string
	Location      string
	Rows          []Row
	TotalDebits   Amount
	TotalCredits  Amount
	Balance       Amount
	GeneratedAt   time.Time
}

// Title returns the statement heading, upper-cased.
func (s *StatementSnapshot) Title() string {
	return statementTitle(s.AccountHolder, s.Location)
}

// Statement captures the current running-balance view of the ledger.
func Statement(l *Ledger) *StatementSnapshot {
	totals := l.Totals()
	entries := l.RunningBalance()

	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Date:        e.Date,
			Particulars: e.Particulars,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Balance:     e.Balance,
		}
	}

	return &StatementSnapshot{
		AccountHolder: l.account.Holder,
		Location:      l.account.Location,
		Rows:          rows,
		TotalDebits:   totals.Debits,
		TotalCredits:  totals.Credits,
		Balance:       totals.Balance,
		GeneratedAt:   time.Now(),
	}
}

// statementTitle builds the "HOLDER LOCATION" heading. The printed statement
// upper-cases the account fields; the ledger stores them as entered.
func statementTitle(holder, location string) string {
	holder = strings.ToUpper(strings.TrimSpace(holder))
	location = strings.ToUpper(strings.TrimSpace(location))
	switch {
	case holder == "" && location == "":
		return "ACCOUNT HOLDER NAME"
	case location == "":
		return holder
	case holder == "":
		return location
	default:
		return holder + " " + location
	}
}
