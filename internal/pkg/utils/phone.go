package utils

import (
	"strings"
)

// NormalizePhoneDigits strips everything that is not a digit: spaces, dashes,
// parentheses, and a leading '+'. Operators type numbers into the calendar by
// hand, so tolerate any local formatting.
func NormalizePhoneDigits(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneTailMatch compares two phone numbers on their final nine digits, which
// survive the local-vs-international prefix difference (e.g. "0601..." vs
// "+48601..."). Numbers shorter than nine digits never tail-match.
func PhoneTailMatch(a, b string) bool {
	da := NormalizePhoneDigits(a)
	db := NormalizePhoneDigits(b)
	if len(da) < 9 || len(db) < 9 {
		return false
	}
	return da[len(da)-9:] == db[len(db)-9:]
}
