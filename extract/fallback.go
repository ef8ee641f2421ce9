package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Fallback extracts entry fields with plain pattern matching. It covers the
// common phrasings only; the remote model is the one that handles relative
// dates or unusual wording.
type Fallback struct{}

var (
	nameRe        = regexp.MustCompile(`(?i)(?:my name is|i am|account holder|name)\s+([a-zA-Z ]{2,30})`)
	locationRe    = regexp.MustCompile(`(?i)(?:location|place|city|from)\s+([a-zA-Z ]{2,20})`)
	debitRe       = regexp.MustCompile(`(?i)(?:debit|spend|spent|paid|withdraw|withdrawal)\s*(?:amount|rupees|rs\.?)?\s*(\d+(?:\.\d{1,2})?)`)
	creditRe      = regexp.MustCompile(`(?i)(?:credit|received|deposit|income|credited|salary)\s*(?:amount|rupees|rs\.?)?\s*(\d+(?:\.\d{1,2})?)`)
	particularsRe = regexp.MustCompile(`(?i)(?:for|bill|invoice|payment|cash|atm|online|transfer|salary|deposit)\s*(?:payment|withdrawal|deposit|transfer)?\s*([a-zA-Z0-9 -]{3,30})`)

	// Name and location captures run until the next field keyword, which the
	// capture classes above cannot express on their own.
	nameStop     = regexp.MustCompile(`(?i)\s*(?:location|from|debit|credit|amount).*$`)
	locationStop = regexp.MustCompile(`(?i)\s*(?:debit|credit|amount|date).*$`)
)

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Extract applies the patterns. It errors only when nothing at all matched.
func (f *Fallback) Extract(_ context.Context, text string) (Record, error) {
	var rec Record

	if v := firstMatch(nameRe, text); v != "" {
		rec.AccountHolder = strings.TrimSpace(nameStop.ReplaceAllString(v, ""))
	}
	if v := firstMatch(locationRe, text); v != "" {
		rec.Location = strings.TrimSpace(locationStop.ReplaceAllString(v, ""))
	}
	if v := firstMatch(debitRe, text); v != "" {
		rec.DebitAmount = v
	} else if v := firstMatch(creditRe, text); v != "" {
		rec.CreditAmount = v
	}
	if v := firstMatch(particularsRe, text); v != "" {
		rec.Particulars = v
	}

	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "add entry"), strings.Contains(normalized, "submit"):
		rec.Action = ActionAddEntry
	case strings.Contains(normalized, "clear form"):
		rec.Action = ActionClearForm
	case strings.Contains(normalized, "load sample"):
		rec.Action = ActionLoadSample
	}

	if rec.IsEmpty() {
		return Record{}, fmt.Errorf("no recognizable entry fields in %q", text)
	}
	return rec, nil
}
