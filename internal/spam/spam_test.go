package spam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCleanMessage(t *testing.T) {
	res := Score("We would like a consultation for our new apartment in Berlin.", "anna@example.com")
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.IsSpam)
}

func TestScoreDenylistedWords(t *testing.T) {
	res := Score("Best casino and lottery offers, click here now for details", "promo@example.com")
	// casino + lottery + "click here" = 3 hits.
	assert.Equal(t, 6, res.Score)
	assert.True(t, res.IsSpam)
}

func TestScoreUppercaseShouting(t *testing.T) {
	res := Score("HELLO I NEED YOUR SERVICES RIGHT NOW", "loud@example.com")
	assert.Equal(t, 3, res.Score)
	assert.False(t, res.IsSpam)
}

func TestScoreThrowawayEmail(t *testing.T) {
	res := Score("Please call me about a kitchen redesign.", "user@tempmail.io")
	assert.Equal(t, 5, res.Score)
	assert.True(t, res.IsSpam)

	res = Score("Please call me about a kitchen redesign.", "user@testbox.org")
	assert.True(t, res.IsSpam)
}

func TestScoreShortMessage(t *testing.T) {
	res := Score("hi", "short@example.com")
	assert.Equal(t, 2, res.Score)
	assert.False(t, res.IsSpam)
}

func TestThresholdBoundary(t *testing.T) {
	// Exactly 5 points: uppercase shouting (+3) on a short message (+2).
	exactlyFive := Score("BUY NOW!!", "edge@example.com")
	assert.Equal(t, 5, exactlyFive.Score)
	assert.True(t, exactlyFive.IsSpam)

	// Exactly 4 points: two denylisted words, nothing else.
	exactlyFour := Score("our casino resort needs bitcoin friendly interior styling soon", "edge@example.com")
	assert.Equal(t, 4, exactlyFour.Score)
	assert.False(t, exactlyFour.IsSpam)
}

func TestUppercaseRatioIgnoresNonLetters(t *testing.T) {
	// Digits and punctuation must not dilute the ratio.
	res := Score("CALL 555-0199 NOW!!!", "digits@example.com")
	assert.Equal(t, 3, res.Score)
}
