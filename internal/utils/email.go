package utils

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// lookups and the unique index treat addresses case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
