package utils

import "strings"

// NormalizeName lowercases and collapses internal whitespace so that
// "  Natalia " and "natalia" compare equal.
func NormalizeName(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}

// SplitFullName splits a free-text full name into first name and the rest.
// "Natalia" yields ("natalia", ""); "Natalia Anna Kowalska" yields
// ("natalia", "anna kowalska").
func SplitFullName(fullName string) (firstName, lastName string) {
	parts := strings.Fields(strings.ToLower(fullName))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// NormalizeEmail lowercases and trims; the override rule in booking search
// requires exact equality after this normalization.
func NormalizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
