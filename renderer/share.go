package renderer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kmahajan/bahikhata"
)

// shareTail is how many recent transactions the share message carries.
const shareTail = 5

// ShareText builds the WhatsApp-style summary of a statement: account line,
// totals, balance status and the last few transactions. Amounts use the ₹
// sign and Indian digit grouping.
func ShareText(s *bahikhata.StatementSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*ACCOUNT STATEMENT*\n\n")
	fmt.Fprintf(&b, "*Account Holder:* %s\n", s.Title())
	fmt.Fprintf(&b, "*Generated:* %s\n\n", bahikhata.NewDate(s.GeneratedAt.Date()).Display())

	fmt.Fprintf(&b, "*Financial Summary:*\n")
	fmt.Fprintf(&b, "- Total Entries: %d\n", len(s.Rows))
	fmt.Fprintf(&b, "- Total Debits: %s\n", s.TotalDebits.Display())
	fmt.Fprintf(&b, "- Total Credits: %s\n", s.TotalCredits.Display())
	fmt.Fprintf(&b, "- Current Balance: %s\n", s.Balance.Abs().Display())
	if s.Balance.IsNegative() {
		fmt.Fprintf(&b, "- Status: Debit Balance\n\n")
	} else {
		fmt.Fprintf(&b, "- Status: Credit Balance\n\n")
	}

	fmt.Fprintf(&b, "*Recent Transactions:*\n")
	rows := s.Rows
	if len(rows) > shareTail {
		rows = rows[len(rows)-shareTail:]
	}
	for i, r := range rows {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, r.Date.Display(), r.Particulars)
		if r.Debit.IsPositive() {
			fmt.Fprintf(&b, "   Debit: %s\n", r.Debit.Display())
		}
		if r.Credit.IsPositive() {
			fmt.Fprintf(&b, "   Credit: %s\n", r.Credit.Display())
		}
	}

	return b.String()
}

// ShareURL wraps the share text in a wa.me link, percent-encoded.
func ShareURL(s *bahikhata.StatementSnapshot) string {
	return "https://wa.me/?text=" + url.QueryEscape(ShareText(s))
}
