// Package slug provides URL slug generation with Unicode normalization.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonSlugChars matches runs of anything outside [a-z0-9].
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Make converts a string to a URL-friendly slug: accents stripped, lowered,
// non-alphanumeric runs collapsed to a single hyphen, leading/trailing
// hyphens trimmed.
func Make(s string) string {
	// Decompose accents, drop combining marks, recompose.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = nonSlugChars.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsValid checks that a string is already in slug form.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	return !strings.Contains(s, "--")
}
