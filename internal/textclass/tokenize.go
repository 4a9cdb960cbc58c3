// Package textclass implements the deterministic bag-of-words text
// classifier used to resolve free-form symptom descriptions. Scoring is
// plain term frequency over a fixed training corpus; there is no TF-IDF,
// no smoothing and no learned weights.
package textclass

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords are filler tokens that carry no signal for matching.
// Negations are deliberately not in this list.
var stopwords = map[string]bool{
	"am": true, "an": true, "and": true, "any": true, "are": true,
	"as": true, "at": true, "be": true, "but": true, "by": true,
	"did": true, "do": true, "for": true, "from": true, "had": true,
	"has": true, "have": true, "he": true, "her": true, "his": true,
	"how": true, "if": true, "in": true, "is": true, "it": true,
	"its": true, "me": true, "my": true, "of": true, "on": true,
	"or": true, "our": true, "she": true, "so": true, "some": true,
	"that": true, "the": true, "their": true, "them": true, "they": true,
	"this": true, "to": true, "was": true, "we": true, "what": true,
	"when": true, "with": true, "you": true, "your": true,
}

// Tokenize lowercases the input, splits on any run of non-letter,
// non-digit characters, and drops single-character tokens and stopwords.
// The result preserves input order and keeps duplicates.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var out []string
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		if stopwords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// uniqueTokens returns the distinct tokens of the input in first-seen
// order.
func uniqueTokens(s string) []string {
	seen := map[string]bool{}
	var out []string
	for _, tok := range Tokenize(s) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}
