// Package respid interprets response identifiers: whether they are
// numeric, how they compare, and how they pad into frame filenames.
package respid

import (
	"math/big"
	"strings"
)

// Sentinel is the placeholder id shown when a task has no responses.
const Sentinel = "001"

// Parse reports whether id is a base-10 integer with an optional sign and
// returns its value. Magnitude is unbounded.
func Parse(id string) (*big.Int, bool) {
	digits := id
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	value, ok := new(big.Int).SetString(id, 10)
	if !ok {
		return nil, false
	}
	return value, true
}

// IsNumeric reports whether id parses as an integer.
func IsNumeric(id string) bool {
	_, ok := Parse(id)
	return ok
}

// Less orders ids numeric-first: integers ascending by value, then the
// remaining ids by code point.
func Less(a, b string) bool {
	av, aNum := Parse(a)
	bv, bNum := Parse(b)
	switch {
	case aNum && bNum:
		if c := av.Cmp(bv); c != 0 {
			return c < 0
		}
		return a < b
	case aNum:
		return true
	case bNum:
		return false
	default:
		return a < b
	}
}

// Pad formats a numeric id as at least three zero-padded digits. The second
// result is false when id is not numeric.
func Pad(id string) (string, bool) {
	value, ok := Parse(id)
	if !ok {
		return "", false
	}
	digits := new(big.Int).Abs(value).String()
	width := 3
	sign := ""
	if value.Sign() < 0 {
		sign = "-"
		width--
	}
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return sign + digits, true
}
