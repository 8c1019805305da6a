// Package spam scores contact submissions with a weighted heuristic.
package spam

import (
	"strings"
	"unicode"
)

// Threshold is the cumulative score at which a submission is classified spam.
const Threshold = 5

// Signal weights.
const (
	weightDenylisted  = 2
	weightUppercase   = 3
	weightThrowaway   = 5
	weightTooShort    = 2
	uppercaseRatioMax = 0.7
	minMessageLength  = 10
)

// denylist holds substrings that mark a message as likely spam. Matching is
// case-insensitive; each hit adds weightDenylisted.
var denylist = []string{
	"viagra",
	"casino",
	"lottery",
	"bitcoin",
	"crypto",
	"forex",
	"click here",
	"free money",
	"make money fast",
	"seo service",
	"backlink",
	"guaranteed ranking",
}

// Result is the outcome of scoring one submission.
type Result struct {
	Score  int
	IsSpam bool
}

// Score evaluates a contact submission's message and email.
func Score(message, email string) Result {
	score := 0
	lower := strings.ToLower(message)

	for _, word := range denylist {
		if strings.Contains(lower, word) {
			score += weightDenylisted
		}
	}
	if uppercaseRatio(message) > uppercaseRatioMax {
		score += weightUppercase
	}
	lowerEmail := strings.ToLower(email)
	if strings.Contains(lowerEmail, "@temp") || strings.Contains(lowerEmail, "@test") {
		score += weightThrowaway
	}
	if len(message) < minMessageLength {
		score += weightTooShort
	}

	return Result{Score: score, IsSpam: score >= Threshold}
}

// uppercaseRatio is the share of upper-case letters among all letters.
func uppercaseRatio(s string) float64 {
	var letters, upper int
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
