// Package style computes the linguistic features behind the informal
// stylistic analysis and picks the psychological correlates to report.
package style

import (
	"fmt"
	"strings"

	"github.com/pthm/carebot/internal/textutil"
)

// Features are the linguistic measurements of one answer.
type Features struct {
	Words            int
	WordsPerSentence float64
	Pronouns         int
	PersonalPronouns int
	Articles         int
	Past             int
	Future           int
	Prepositions     int
	Negations        int
}

// Categories groups POS-tag counts.
type Categories struct {
	Pronouns         int
	PersonalPronouns int
	Articles         int
	Past             int
	Future           int
	Prepositions     int
}

var negationWords = map[string]bool{
	"no":    true,
	"not":   true,
	"never": true,
	"n't":   true,
}

// CountWords counts tokens that are not punctuation.
func CountWords(tokens []Token) int {
	n := 0
	for _, tok := range tokens {
		if !textutil.IsPunctuation(tok.Text) {
			n++
		}
	}
	return n
}

// WordsPerSentence averages the word count over the sentences of text.
func WordsPerSentence(tagger Tagger, text string) (float64, error) {
	sentences, err := tagger.Sentences(text)
	if err != nil {
		return 0, err
	}
	if len(sentences) == 0 {
		return 0, nil
	}

	total := 0
	for _, s := range sentences {
		tokens, err := tagger.Tokens(s)
		if err != nil {
			return 0, err
		}
		total += CountWords(tokens)
	}
	return float64(total) / float64(len(sentences)), nil
}

// CountCategories counts tokens per POS-tag group. A PRP token counts both
// as a pronoun and as a personal pronoun.
func CountCategories(tokens []Token) Categories {
	var c Categories
	for _, tok := range tokens {
		switch tok.Tag {
		case "PRP":
			c.Pronouns++
			c.PersonalPronouns++
		case "PRP$", "WP", "WP$":
			c.Pronouns++
		case "DT":
			c.Articles++
		case "VBD", "VBN":
			c.Past++
		case "MD":
			c.Future++
		case "IN":
			c.Prepositions++
		}
	}
	return c
}

// CountNegations counts "no", "not", "never" and "n't" tokens.
func CountNegations(tokens []Token) int {
	n := 0
	for _, tok := range tokens {
		if negationWords[strings.ToLower(tok.Text)] {
			n++
		}
	}
	return n
}

// Analyze measures every feature of text.
func Analyze(tagger Tagger, text string) (Features, error) {
	tokens, err := tagger.Tokens(text)
	if err != nil {
		return Features{}, fmt.Errorf("analyzing style: %w", err)
	}
	wps, err := WordsPerSentence(tagger, text)
	if err != nil {
		return Features{}, fmt.Errorf("analyzing style: %w", err)
	}

	c := CountCategories(tokens)
	return Features{
		Words:            CountWords(tokens),
		WordsPerSentence: wps,
		Pronouns:         c.Pronouns,
		PersonalPronouns: c.PersonalPronouns,
		Articles:         c.Articles,
		Past:             c.Past,
		Future:           c.Future,
		Prepositions:     c.Prepositions,
		Negations:        CountNegations(tokens),
	}, nil
}
