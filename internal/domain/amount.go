package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision is the fixed number of fractional digits carried by Amount.
const Precision = 4

// fracModulus is 10^Precision; Amount.frac is always below it.
const fracModulus = 10000

// Amount is an unsigned monetary value with a fixed four-digit fraction.
// The zero value is 0.0000. Amounts are immutable; arithmetic returns new
// values and never loses precision.
type Amount struct {
	units uint64
	frac  uint16
}

// NewAmount builds an Amount from whole units and fractional ten-thousandths,
// normalizing any fraction overflow into the units part.
func NewAmount(units uint64, frac uint16) Amount {
	return Amount{
		units: units + uint64(frac/fracModulus),
		frac:  frac % fracModulus,
	}
}

// ParseAmount parses a decimal string such as "10.5", ".002" or "3".
// Only the first four fractional characters are consumed and must be
// digits; anything beyond them is ignored, so excess precision truncates
// rather than rounds. The empty string and non-numeric input fail.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("parse amount: empty input")
	}

	whole, fraction, _ := strings.Cut(s, ".")

	var units uint64
	if whole != "" {
		var err error
		units, err = strconv.ParseUint(whole, 10, 64)
		if err != nil {
			return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
		}
	}

	var frac uint16
	for i := 0; i < Precision; i++ {
		var digit uint16
		if i < len(fraction) {
			c := fraction[i]
			if c < '0' || c > '9' {
				return Amount{}, fmt.Errorf("parse amount %q: invalid fractional digit %q", s, c)
			}
			digit = uint16(c - '0')
		}
		frac = frac*10 + digit
	}

	return Amount{units: units, frac: frac}, nil
}

// String formats the amount as "<units>.<frac>" with the fraction
// zero-padded to the fixed width. ParseAmount(a.String()) == a.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%04d", a.units, a.frac)
}

// Add returns a + b. Fraction overflow carries into the units part.
func (a Amount) Add(b Amount) Amount {
	return NewAmount(a.units+b.units, a.frac+b.frac)
}

// Sub returns (a - b, zero, true) when a >= b. When a < b it returns
// (zero, b - a, false): the shortfall arm carries exactly the missing
// magnitude, which callers use both to detect underflow and to know how
// much backlog remains.
func (a Amount) Sub(b Amount) (diff Amount, shortfall Amount, ok bool) {
	switch {
	case a.units >= b.units && a.frac >= b.frac:
		return Amount{units: a.units - b.units, frac: a.frac - b.frac}, Amount{}, true
	case a.units > b.units: // borrow from units
		return Amount{units: a.units - b.units - 1, frac: fracModulus + a.frac - b.frac}, Amount{}, true
	case a.units == b.units: // only the fraction is short
		return Amount{}, Amount{frac: b.frac - a.frac}, false
	case a.frac > b.frac: // borrow on the shortfall side
		return Amount{}, Amount{units: b.units - a.units - 1, frac: fracModulus + b.frac - a.frac}, false
	default:
		return Amount{}, Amount{units: b.units - a.units, frac: b.frac - a.frac}, false
	}
}

// Cmp returns -1, 0 or 1 comparing a against b. The order is total and
// exact.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.units < b.units:
		return -1
	case a.units > b.units:
		return 1
	case a.frac < b.frac:
		return -1
	case a.frac > b.frac:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b are exactly the same value.
func (a Amount) Equal(b Amount) bool {
	return a == b
}

// IsZero reports whether a is 0.0000.
func (a Amount) IsZero() bool {
	return a == Amount{}
}
