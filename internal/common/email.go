package common

import "strings"

// NormalizeEmail is the single normalization rule applied wherever two emails
// are compared: surrounding whitespace is trimmed and the address is
// lower-cased. Stored records keep the casing the user typed; only
// comparisons go through this function.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail reports whether two addresses identify the same account.
func SameEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}
