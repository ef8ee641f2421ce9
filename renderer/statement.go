// Package renderer turns ledger views into markdown and share text. It holds
// all presentation choices (CR/DR markers, the ₹ sign, column layout) so the
// root package stays free of formatting concerns.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/kmahajan/bahikhata"
	md "github.com/nao1215/markdown"
)

// StatementMarkdown renders the full statement: heading, one table row per
// transaction with the running balance, and the totals row.
func StatementMarkdown(s *bahikhata.StatementSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("ACCOUNT STATEMENT")
	doc.PlainText(s.Title())
	doc.PlainText(fmt.Sprintf("Generated: %s", bahikhata.NewDate(s.GeneratedAt.Date()).Display()))

	rows := make([][]string, 0, len(s.Rows)+1)
	for _, r := range s.Rows {
		rows = append(rows, []string{
			r.Date.Display(),
			r.Particulars,
			cell(r.Debit),
			cell(r.Credit),
			balanceCell(r.Balance),
		})
	}
	rows = append(rows, []string{
		"",
		"TOTAL",
		s.TotalDebits.String(),
		s.TotalCredits.String(),
		balanceCell(s.Balance),
	})

	doc.Table(md.TableSet{
		Header: []string{"DATE", "PARTICULARS", "DEBIT", "CREDIT", "BALANCE"},
		Rows:   rows,
	})

	return doc.String()
}

// cell renders a debit or credit column value. Zero means the leg is not
// present on this row and the column stays blank.
func cell(a bahikhata.Amount) string {
	if a.IsZero() {
		return ""
	}
	return a.String()
}

// balanceCell renders a running balance with the banker's CR/DR marker
// instead of a minus sign.
func balanceCell(a bahikhata.Amount) string {
	if a.IsNegative() {
		return a.Abs().String() + " DR"
	}
	return a.String() + " CR"
}
