// Package stringx provides small string-inspection helpers used by the
// CLI and handy on their own.
package stringx

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// HasDigit reports whether s contains at least one digit.
func HasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// HasLower reports whether s contains at least one lower-case letter.
func HasLower(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

// HasUpper reports whether s contains at least one upper-case letter.
func HasUpper(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

// HasSymbol reports whether s contains a character that is not a letter,
// digit or whitespace.
func HasSymbol(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
	})
}

// HasWhitespace reports whether s contains any whitespace.
func HasWhitespace(s string) bool {
	return strings.ContainsFunc(s, unicode.IsSpace)
}

// Contains reports whether s contains sub, optionally ignoring case.
func Contains(s, sub string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(s, sub)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, subs []string, caseSensitive bool) bool {
	for _, sub := range subs {
		if Contains(s, sub, caseSensitive) {
			return true
		}
	}
	return false
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsYes reports whether s is an affirmative answer: "y", "yes", "yeah",
// "true" or "1", ignoring case and surrounding space.
func IsYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "yeah", "true", "1":
		return true
	}
	return false
}

// Only reports whether s consists solely of characters from chars.
func Only(s, chars string, caseSensitive bool) bool {
	if !caseSensitive {
		s = strings.ToLower(s)
		chars = strings.ToLower(chars)
	}
	for _, r := range s {
		if !strings.ContainsRune(chars, r) {
			return false
		}
	}
	return true
}

// RemoveChars returns s with every occurrence of the given characters
// removed.
func RemoveChars(s string, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Shuffle returns s with its runes in random order drawn from rng.
func Shuffle(s string, rng *rand.Rand) string {
	runes := []rune(s)
	rng.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}

// SplitEvery splits s into chunks of n runes; the last chunk may be
// shorter. n < 1 yields nil.
func SplitEvery(s string, n int) []string {
	if n < 1 {
		return nil
	}
	runes := []rune(s)
	var out []string
	for len(runes) > 0 {
		if len(runes) < n {
			out = append(out, string(runes))
			break
		}
		out = append(out, string(runes[:n]))
		runes = runes[n:]
	}
	return out
}
