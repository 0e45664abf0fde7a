package ingest

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// DefaultMinTokenLength keeps every non-empty token. Raising it drops short
// particles (e.g. single-syllable 에, 도) before they reach the counters,
// which changes both keyword and edge counts.
const DefaultMinTokenLength = 1

// Tokenizer splits normalized text into candidate keyword tokens
type Tokenizer struct {
	minLength int
}

// NewTokenizer creates a tokenizer dropping tokens shorter than minLength
// runes. Values below 1 are clamped to DefaultMinTokenLength.
func NewTokenizer(minLength int) *Tokenizer {
	if minLength < DefaultMinTokenLength {
		minLength = DefaultMinTokenLength
	}
	return &Tokenizer{minLength: minLength}
}

// MinLength returns the minimum token length in runes.
func (t *Tokenizer) MinLength() int {
	return t.minLength
}

// Tokenize returns a lazy sequence of whitespace-separated tokens.
// The sequence can be ranged over any number of times.
func (t *Tokenizer) Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for field := range strings.FieldsSeq(text) {
			if utf8.RuneCountInString(field) < t.minLength {
				continue
			}
			if !yield(field) {
				return
			}
		}
	}
}

// Tokens collects Tokenize into a slice.
func (t *Tokenizer) Tokens(text string) []string {
	var tokens []string
	for tok := range t.Tokenize(text) {
		tokens = append(tokens, tok)
	}
	return tokens
}
