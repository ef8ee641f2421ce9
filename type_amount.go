package bahikhata

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount represents a rupee amount. The zero value is a valid zero amount.
//
// An Amount carries no sign in its textual forms: String and Display render
// the absolute value, and callers decide the positive/negative presentation
// (a CR/DR marker, a style). Arithmetic keeps the sign.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount coerces a raw field to a non-negative Amount. Absent or
// unparseable input (including negatives) coerces to zero, matching the form
// semantics where an empty amount field means "not this leg".
func ParseAmount(str string) Amount {
	str = strings.TrimSpace(str)
	if str == "" {
		return Amount{}
	}
	v, err := decimal.NewFromString(str)
	if err != nil || v.IsNegative() {
		return Amount{}
	}
	return Amount{value: v}
}

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount               { return Amount{value: a.value.Abs()} }

// currency returns the ledger currency, Indian Rupee.
func currency() *money.Currency {
	// to get a never nil currency go through the Money constructor
	return money.New(0, money.INR).Currency()
}

// String renders the absolute amount with the South Asian digit grouping:
// the last three integer digits form one group, then pairs of two leftward,
// with the leftover one or two digits emitted ungrouped as the leftmost
// group. The fraction is always two digits: 0 renders as "0.00" and
// 12345678 as "1,23,45,678.00".
func (a Amount) String() string {
	fixed := a.value.Abs().StringFixed(int32(currency().Fraction))
	integer, frac, _ := strings.Cut(fixed, ".")

	if len(integer) <= 3 {
		return integer + "." + frac
	}

	groups := []string{integer[len(integer)-3:]}
	remaining := integer[:len(integer)-3]
	for len(remaining) > 2 {
		groups = append(groups, remaining[len(remaining)-2:])
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		groups = append(groups, remaining)
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(",")
		}
	}
	return b.String() + "." + frac
}

// Display is the glyph variant of String: "₹1,00,000.00".
func (a Amount) Display() string {
	return currency().Grapheme + a.String()
}

// MarshalJSON persists the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.value.UnmarshalJSON(data)
}
