package analyze

import (
	"math"
	"strings"
)

// readability formula constants. The linear formula rewards an average
// sentence length near idealWordsPerSentence and penalizes deviation in
// both directions until the clamp is hit.
const (
	idealWordsPerSentence = 15.0
	readabilitySlope      = 2.0
)

// Readability scores text on a 0..100 scale from its average sentence
// length.
//
// Sentences are split on '.', '!', and '?' boundaries with blank
// fragments discarded; words are whitespace-delimited. Text with no
// sentences or no words scores 0. The exact formula is
// 100 - (avgWordsPerSentence - 15) * 2, clamped to [0, 100] and rounded
// to the nearest integer; callers depend on these numbers staying put.
func Readability(text string) int {
	sentences := 0
	for _, fragment := range strings.FieldsFunc(text, isSentenceBoundary) {
		if strings.TrimSpace(fragment) != "" {
			sentences++
		}
	}
	words := len(strings.Fields(text))
	if sentences == 0 || words == 0 {
		return 0
	}

	avg := float64(words) / float64(sentences)
	score := 100 - (avg-idealWordsPerSentence)*readabilitySlope
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

// isSentenceBoundary reports whether r terminates a sentence.
func isSentenceBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
