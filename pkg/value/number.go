package value

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// Number is a 64-bit signed integer or a 64-bit float, distinguished so
// that integer-valued numbers round-trip through rendering without a
// fractional part. This narrows an arbitrary-precision numeric tower
// (int / *big.Int / *big.Rat / float64, unified on demand) down to the
// two cases spec.md actually calls for: there is no rational literal
// syntax and no requirement to exceed float64/int64 precision.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

func (Number) Kind() string { return "number" }

// Int constructs an integer Number.
func Int(i int64) Number { return Number{isInt: true, i: i} }

// Float constructs a floating-point Number.
func Float(f float64) Number { return Number{isInt: false, f: f} }

// IsInt reports whether the Number was constructed as an integer.
func (n Number) IsInt() bool { return n.isInt }

// Int64 returns the integer value, truncating a float if necessary.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the floating-point value of the Number.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Add returns the sum of two Numbers, promoting to float64 if either
// operand is a float — the same promote-before-combine shape a general
// numeric-tower unifier takes, narrowed to two cases.
func (n Number) Add(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i + m.i)
	}
	return Float(n.Float64() + m.Float64())
}

// ParseNumber parses s strictly: optional sign, digits, optional fraction
// and exponent; surrounding whitespace is ignored. It returns ok=false if s
// is not a valid number, the behavior `n` needs (spec.md §4.5) to raise
// "not a number: …".
func ParseNumber(s string) (Number, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, false
	}
	// strconv would also accept "inf", "NaN" and hex floats; any letter
	// other than an exponent marker rules those out.
	if strings.IndexFunc(s, func(r rune) bool { return unicode.IsLetter(r) && r != 'e' && r != 'E' }) >= 0 {
		return Number{}, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}
	return Number{}, false
}

// ParseNumberLenient is like ParseNumber but returns Int(0) instead of
// ok=false — the coercion rule `+` uses (spec.md §4.7/§7): non-numeric
// leaves contribute zero rather than aborting the reduction.
func ParseNumberLenient(s string) Number {
	n, ok := ParseNumber(s)
	if !ok {
		return Int(0)
	}
	return n
}

// String renders the Number the way the text renderer does: integers
// without a decimal point, floats as the shortest round-trippable decimal.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// MarshalJSON renders the Number as a JSON number (spec.md §6): an integer
// literal when isInt, a JSON float otherwise.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.isInt {
		return json.Marshal(n.i)
	}
	return json.Marshal(n.f)
}
