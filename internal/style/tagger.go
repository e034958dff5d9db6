package style

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Token is a word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// Tagger splits text into tagged tokens and into sentences.
type Tagger interface {
	Tokens(text string) ([]Token, error)
	Sentences(text string) ([]string, error)
}

// ProseTagger is a Tagger backed by prose's tokenizer, sentence segmenter
// and averaged perceptron tagger.
type ProseTagger struct{}

// NewProseTagger creates a new prose-backed tagger
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tokens tokenizes and tags text.
func (p *ProseTagger) Tokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tagging text: %w", err)
	}

	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

// Sentences splits text into sentences.
func (p *ProseTagger) Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segmenting text: %w", err)
	}

	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out, nil
}
