package bahikhata

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the ISO-8601 format used to persist dates.
const DateFormat = "2006-01-02"

// DisplayDateFormat is the format used on the statement, e.g. "04.12.2023".
const DisplayDateFormat = "02.01.2006"

// Date represents a calendar date with day-level granularity. There is no
// timezone semantics beyond local-date truncation.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Display formats the date the way the statement shows it, DD.MM.YYYY.
func (d Date) Display() string { return d.time().Format(DisplayDateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It accepts the literal "today", the
// ISO form (lenient, "2025-7-1" works), and the statement display form
// "02.01.2006". Anything else is an error: dates are always parsed and
// renormalized, never passed through on the strength of a separator alone.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	if strings.EqualFold(str, "today") {
		return Today(), nil
	}

	if on, err := time.Parse(readDateFormat, str); err == nil {
		return NewDate(on.Date()), nil
	}
	if on, err := time.Parse(DisplayDateFormat, str); err == nil {
		return NewDate(on.Date()), nil
	}
	// Full timestamps happen when the input comes from another tool.
	if on, err := time.Parse(time.RFC3339, str); err == nil {
		return NewDate(on.Date()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q or %q", str, DateFormat, DisplayDateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*j = d
	return nil
}

// MarshalJSON persists the date in the display form, the form the statement
// and the backup format share.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.Display()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
