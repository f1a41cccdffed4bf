package models

import (
	"strconv"
)

// Number is a JSON number that remembers whether its literal was an integer.
// Chart tuples mix integer timestamps with floating amounts, and the distinction
// is kept rather than widening everything to float64.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

// IntNumber returns an integer Number.
func IntNumber(i int64) Number { return Number{isInt: true, i: i} }

// FloatNumber returns a floating-point Number.
func FloatNumber(f float64) Number { return Number{f: f} }

// IsInt reports whether the literal was an integer.
func (n Number) IsInt() bool { return n.isInt }

// Int64 returns the value truncated to an integer.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the value as a float.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Interface returns an int64 or a float64.
func (n Number) Interface() any {
	if n.isInt {
		return n.i
	}
	return n.f
}

func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// ChartPoint is one positional [timestamp, value] tuple of a chart series.
type ChartPoint [2]Number

// Timestamp returns the first position as unix seconds.
func (p ChartPoint) Timestamp() int64 { return p[0].Int64() }

// Value returns the second position.
func (p ChartPoint) Value() Number { return p[1] }
