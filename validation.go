package bahikhata

import (
	"fmt"
	"strings"
)

// Rule identifies the validation rule an entry violated.
type Rule string

const (
	// MissingDate is reported when the date is absent or unparseable.
	MissingDate Rule = "missing-date"
	// MissingParticulars is reported when the particulars are empty after trimming.
	MissingParticulars Rule = "missing-particulars"
	// NoAmount is reported when both debit and credit are zero or absent.
	NoAmount Rule = "no-amount"
	// AmbiguousAmount is reported when both debit and credit are strictly positive.
	AmbiguousAmount Rule = "ambiguous-amount"
)

// ValidationError reports exactly which rule a candidate entry violated.
// It is always recoverable: the ledger is left unchanged.
type ValidationError struct {
	Rule Rule
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case MissingDate:
		return "entry date is missing or not a date"
	case MissingParticulars:
		return "entry particulars are missing"
	case NoAmount:
		return "entry needs either a debit or a credit amount"
	case AmbiguousAmount:
		return "entry cannot have both a debit and a credit amount"
	default:
		return fmt.Sprintf("invalid entry: %s", e.Rule)
	}
}

// Entry is a candidate transaction as it comes from the outside: raw,
// possibly-missing fields from a form, a flag set, or an extraction record.
type Entry struct {
	Date        string
	Particulars string
	Debit       string
	Credit      string
}

// Validate normalizes a candidate entry or returns the violated rule.
//
// Normalization trims the particulars, coerces the amount fields to
// non-negative decimals (unparseable or absent reads as zero), and parses
// the date from the ISO or display form into a canonical Date.
func Validate(e Entry) (day Date, particulars string, debit, credit Amount, err error) {
	day, dateErr := ParseDate(e.Date)
	if dateErr != nil || day.IsZero() {
		return Date{}, "", Amount{}, Amount{}, &ValidationError{Rule: MissingDate}
	}

	particulars = strings.TrimSpace(e.Particulars)
	if particulars == "" {
		return Date{}, "", Amount{}, Amount{}, &ValidationError{Rule: MissingParticulars}
	}

	debit = ParseAmount(e.Debit)
	credit = ParseAmount(e.Credit)
	if debit.IsZero() && credit.IsZero() {
		return Date{}, "", Amount{}, Amount{}, &ValidationError{Rule: NoAmount}
	}
	if debit.IsPositive() && credit.IsPositive() {
		return Date{}, "", Amount{}, Amount{}, &ValidationError{Rule: AmbiguousAmount}
	}

	return day, particulars, debit, credit, nil
}
