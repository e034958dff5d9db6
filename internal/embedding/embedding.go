// Package embedding turns text into averaged word-vector features.
package embedding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pthm/carebot/internal/textutil"
)

// ErrNoTokens is returned by Embed when nothing is left of the input after
// preprocessing.
var ErrNoTokens = errors.New("embedding: no tokens to average")

// Table maps tokens to fixed-size vectors. It is read-only once loaded.
type Table struct {
	dim     int
	vectors map[string][]float64
}

// New builds a table from an in-memory map. All vectors must share the same
// length.
func New(vectors map[string][]float64) (*Table, error) {
	t := &Table{vectors: make(map[string][]float64, len(vectors))}
	for tok, v := range vectors {
		if t.dim == 0 {
			t.dim = len(v)
		}
		if len(v) != t.dim {
			return nil, fmt.Errorf("vector for %q has dimension %d, want %d", tok, len(v), t.dim)
		}
		t.vectors[tok] = v
	}
	return t, nil
}

// Load reads a table in word2vec text format from path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses word2vec text format: an optional "count dim" header, then one
// "token v1 ... vN" row per line.
func Read(r io.Reader) (*Table, error) {
	t := &Table{vectors: make(map[string][]float64)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if lineNum == 1 && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				dim, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("line 1: invalid dimension %q", fields[1])
				}
				t.dim = dim
				continue
			}
		}

		vec := make([]float64, len(fields)-1)
		for i, s := range fields[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			vec[i] = v
		}

		if t.dim == 0 {
			t.dim = len(vec)
		}
		if len(vec) != t.dim {
			return nil, fmt.Errorf("line %d: dimension %d, want %d", lineNum, len(vec), t.dim)
		}
		t.vectors[fields[0]] = vec
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if t.dim == 0 {
		return nil, errors.New("empty embedding table")
	}
	return t, nil
}

// Dim returns the vector dimension.
func (t *Table) Dim() int {
	return t.dim
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	return len(t.vectors)
}

// Vector returns the vector for tok, or a zero vector for unknown tokens.
// The returned slice must not be modified.
func (t *Table) Vector(tok string) []float64 {
	if v, ok := t.vectors[tok]; ok {
		return v
	}
	return make([]float64, t.dim)
}

// Embed averages the vectors of the preprocessed tokens of text.
func (t *Table) Embed(text string) ([]float64, error) {
	tokens := textutil.Words(text)
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}

	out := make([]float64, t.dim)
	for _, tok := range tokens {
		v, ok := t.vectors[tok]
		if !ok {
			continue
		}
		for i := range out {
			out[i] += v[i]
		}
	}
	n := float64(len(tokens))
	for i := range out {
		out[i] /= n
	}
	return out, nil
}

// EmbedAll embeds every document, failing on the first one without tokens.
func (t *Table) EmbedAll(docs []string) ([][]float64, error) {
	out := make([][]float64, len(docs))
	for i, doc := range docs {
		v, err := t.Embed(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Preprocess drops punctuation tokens and lower-cases the rest.
func Preprocess(text string) string {
	return strings.Join(textutil.Words(text), " ")
}
