// Package textutil holds the token normalisation rules shared by the
// embedding and stylistic feature extractors.
package textutil

import "strings"

// Punctuation is the ASCII punctuation set, in the order a token is matched
// against it.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsPunctuation reports whether tok is a contiguous run of Punctuation,
// which also covers the empty token and single punctuation marks.
func IsPunctuation(tok string) bool {
	return strings.Contains(Punctuation, tok)
}

// Words returns the whitespace-separated tokens of s that are not
// punctuation, lower-cased.
func Words(s string) []string {
	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsPunctuation(f) {
			continue
		}
		words = append(words, strings.ToLower(f))
	}
	return words
}
