// Package roman converts between integers and roman numerals.
package roman

import (
	"strings"

	"github.com/arthur-debert/tagline/pkg/errors"
)

type numeral struct {
	symbol string
	value  int
}

// Descending order, subtractive pairs included.
var numerals = []numeral{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// ToRoman converts n to its roman numeral representation. The classic
// alphabet covers 1 through 3999.
func ToRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", errors.Newf(errors.ErrOutOfRange, "cannot express %d as a roman numeral, want 1 to 3999", n)
	}

	var b strings.Builder
	for _, nm := range numerals {
		for n >= nm.value {
			b.WriteString(nm.symbol)
			n -= nm.value
		}
	}
	return b.String(), nil
}

// FromRoman parses a roman numeral. Input is case-insensitive and must be
// in canonical form: "IIII" and "IXIX" are rejected.
func FromRoman(s string) (int, error) {
	if s == "" {
		return 0, errors.New(errors.ErrInvalidInput, "empty roman numeral")
	}

	upper := strings.ToUpper(s)
	rest := upper
	total := 0
	for _, nm := range numerals {
		for strings.HasPrefix(rest, nm.symbol) {
			total += nm.value
			rest = rest[len(nm.symbol):]
		}
	}
	if rest != "" {
		return 0, errors.Newf(errors.ErrInvalidInput, "invalid roman numeral %q", s)
	}

	// Greedy parsing accepts non-canonical spellings like "IIII"; reject
	// anything that does not round-trip.
	canonical, err := ToRoman(total)
	if err != nil || canonical != upper {
		return 0, errors.Newf(errors.ErrInvalidInput, "non-canonical roman numeral %q", s)
	}
	return total, nil
}
