package bahikhata

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// ISO format, lenient on leading zeros.
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		// Statement display format.
		{"18.04.2025", NewDate(2025, time.April, 18), false},
		{"04.12.2023", NewDate(2023, time.December, 4), false},
		// The literal today, any case.
		{"today", Today(), false},
		{"Today", Today(), false},
		{" today ", Today(), false},
		// Full timestamps from other tools.
		{"2025-04-18T10:30:00+05:30", NewDate(2025, time.April, 18), false},
		// Rejected: date-shaped strings are parsed, never passed through.
		{"invalid-date", Date{}, true},
		{"2025-13-40", Date{}, true},
		{"18/04/2025", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Errorf("ParseDate(%q) expected an error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateDisplay(t *testing.T) {
	d := NewDate(2023, time.December, 4)
	if got, want := d.Display(), "04.12.2023"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got, want := d.String(), "2023-12-04"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2023, time.December, 4)
	later := NewDate(2025, time.April, 18)

	if !earlier.Before(later) {
		t.Error("expected 2023-12-04 before 2025-04-18")
	}
	if !later.After(earlier) {
		t.Error("expected 2025-04-18 after 2023-12-04")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a date is neither before nor after itself")
	}
}

// TestDateJSONRoundTrip checks the backup file form: dates persist in the
// display form and read back identical.
func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.April, 18)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `"18.04.2025"`; string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	// The ISO form also reads, older files used it.
	var iso Date
	if err := json.Unmarshal([]byte(`"2025-04-18"`), &iso); err != nil {
		t.Fatalf("unmarshal ISO: %v", err)
	}
	if iso != d {
		t.Errorf("ISO read = %v, want %v", iso, d)
	}
}
