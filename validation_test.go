package bahikhata

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := Entry{Date: "2025-04-18", Particulars: "RENT PAYMENT", Debit: "25000"}

	day, particulars, debit, credit, err := Validate(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != NewDate(2025, time.April, 18) {
		t.Errorf("day = %v", day)
	}
	if particulars != "RENT PAYMENT" {
		t.Errorf("particulars = %q", particulars)
	}
	if !debit.Equal(A(25000)) || !credit.IsZero() {
		t.Errorf("amounts = %v / %v", debit, credit)
	}
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		rule  Rule
	}{
		{"no date", Entry{Particulars: "X", Debit: "100"}, MissingDate},
		{"bad date", Entry{Date: "18/04/2025", Particulars: "X", Debit: "100"}, MissingDate},
		{"no particulars", Entry{Date: "today", Debit: "100"}, MissingParticulars},
		{"blank particulars", Entry{Date: "today", Particulars: "   ", Debit: "100"}, MissingParticulars},
		{"no amount", Entry{Date: "today", Particulars: "X"}, NoAmount},
		{"zero amounts", Entry{Date: "today", Particulars: "X", Debit: "0", Credit: "0"}, NoAmount},
		{"unparseable amount", Entry{Date: "today", Particulars: "X", Debit: "abc"}, NoAmount},
		{"negative amount", Entry{Date: "today", Particulars: "X", Debit: "-100"}, NoAmount},
		{"both amounts", Entry{Date: "today", Particulars: "X", Debit: "100", Credit: "200"}, AmbiguousAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, err := Validate(tt.entry)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a *ValidationError, got %v", err)
			}
			if verr.Rule != tt.rule {
				t.Errorf("rule = %s, want %s", verr.Rule, tt.rule)
			}
		})
	}
}

// TestValidateNormalizes checks the display date form and padded fields come
// out canonical.
func TestValidateNormalizes(t *testing.T) {
	day, particulars, _, credit, err := Validate(Entry{
		Date:        "18.04.2025",
		Particulars: "  SALARY CREDIT  ",
		Credit:      " 50000 ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.String() != "2025-04-18" {
		t.Errorf("day = %s", day)
	}
	if particulars != "SALARY CREDIT" {
		t.Errorf("particulars = %q", particulars)
	}
	if !credit.Equal(A(50000)) {
		t.Errorf("credit = %v", credit)
	}
}
