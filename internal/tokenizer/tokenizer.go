// Package tokenizer turns raw document text into normalized term counts.
// Normalization lowercases each token and strips a fixed punctuation set;
// whitespace is the only token delimiter.
package tokenizer

import (
	"strings"
)

// Punctuation is an immutable set of characters removed from tokens during
// normalization. It is constructed once at startup and never mutated.
type Punctuation map[rune]struct{}

// NewPunctuation builds a Punctuation set from the characters of chars.
// Duplicate characters collapse into a single set entry.
func NewPunctuation(chars string) Punctuation {
	set := make(Punctuation, len(chars))
	for _, ch := range chars {
		set[ch] = struct{}{}
	}
	return set
}

// Contains reports whether ch is part of the punctuation set.
func (p Punctuation) Contains(ch rune) bool {
	_, ok := p[ch]
	return ok
}

// Tokenizer normalizes tokens and counts terms using a fixed punctuation set.
type Tokenizer struct {
	punctuation Punctuation
}

// New creates a Tokenizer that strips the given punctuation set.
func New(punctuation Punctuation) *Tokenizer {
	return &Tokenizer{punctuation: punctuation}
}

// Normalize lowercases a token and removes every punctuation character.
// Runes outside the punctuation set (letters, digits, anything else) are
// kept as-is. Normalize is idempotent: normalizing an already-normalized
// token yields the same string.
func (t *Tokenizer) Normalize(token string) string {
	lower := strings.ToLower(token)
	return strings.Map(func(ch rune) rune {
		if t.punctuation.Contains(ch) {
			return -1
		}
		return ch
	}, lower)
}

// CountTerms splits text on whitespace and returns a map from normalized
// term to its occurrence count.
//
// A token made entirely of punctuation normalizes to the empty string and is
// counted under the "" key like any other term. This mirrors the original
// engine's behavior and is deliberately left uncorrected.
func (t *Tokenizer) CountTerms(text string) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, token := range strings.Fields(text) {
		counts[t.Normalize(token)]++
	}
	return counts
}
