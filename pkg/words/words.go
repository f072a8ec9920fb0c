// Package words spells numbers out in English and formats prices.
package words

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/tagline/pkg/errors"
)

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// Scale names for each three-digit group past the first. int64 tops out
// within quintillions.
var scales = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion",
}

// Well-known two-digit decimals read as fractions, matching how prices
// and measurements are usually spoken.
var fractions = map[string]string{
	"5":  "and a half",
	"25": "and one quarter",
	"75": "and three quarters",
	"33": "and one third",
	"66": "and two thirds",
}

// AsWord spells an integer out in English words.
//
//	AsWord(3523) == "three thousand five hundred twenty-three"
func AsWord(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		// The magnitude is taken in uint64 so MinInt64, whose negation
		// does not fit in int64, still spells correctly.
		return "negative " + spellMagnitude(uint64(0)-uint64(n))
	}
	return spellMagnitude(uint64(n))
}

func spellMagnitude(n uint64) string {
	var groups []string
	scale := 0
	for n > 0 {
		group := int(n % 1000)
		if group != 0 {
			s := spellGroup(group)
			if scales[scale] != "" {
				s += " " + scales[scale]
			}
			groups = append([]string{s}, groups...)
		}
		n /= 1000
		scale++
	}
	return strings.Join(groups, " ")
}

// AsWordFloat spells a decimal number out in English. Common fractions
// become phrases ("and a half"); other decimals are read digit by digit
// after "point". Non-finite values are rejected.
func AsWordFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot spell %v in words", f)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, decPart, hasDec := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrOutOfRange, "number %s is too large to spell", s)
	}

	out := AsWord(n)
	if hasDec {
		if frac, ok := fractions[strings.TrimRight(decPart, "0")]; ok {
			out += " " + frac
		} else {
			var digits []string
			for _, d := range decPart {
				digits = append(digits, spellDigit(d))
			}
			out += " point " + strings.Join(digits, " ")
		}
	}
	if neg {
		out = "negative " + out
	}
	return out, nil
}

// spellGroup spells a number from 1 to 999.
func spellGroup(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100], "hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, ones[n])
	case n%10 == 0:
		parts = append(parts, tens[n/10])
	default:
		parts = append(parts, tens[n/10]+"-"+ones[n%10])
	}
	return strings.Join(parts, " ")
}

func spellDigit(d rune) string {
	if d == '0' {
		return "zero"
	}
	return ones[d-'0']
}

// AsPrice formats a number as a price with two decimal places.
//
//	AsPrice(20, "€") == "€20.00"
func AsPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "€"
	}
	return fmt.Sprintf("%s%.2f", currency, amount)
}
