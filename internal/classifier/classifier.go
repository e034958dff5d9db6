// Package classifier implements the binary health classifier: linear models
// trained over averaged word embeddings, and an LLM-backed alternative.
package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/pthm/carebot/internal/embedding"
)

// Labels produced by the health classifier.
const (
	Healthy   = 0
	Unhealthy = 1
)

// Kind names a classifier backend.
type Kind string

const (
	KindLogistic Kind = "logistic"
	KindSVM      Kind = "svm"
	KindMLP      Kind = "mlp"
	KindLLM      Kind = "llm"
)

// Kinds lists the backends in the order they are reported.
var Kinds = []Kind{KindLogistic, KindSVM, KindMLP, KindLLM}

// TrainableKinds lists the backends that are fitted on the dataset.
var TrainableKinds = []Kind{KindLogistic, KindSVM, KindMLP}

// ErrUnknownKind is returned for unrecognised backend names.
var ErrUnknownKind = errors.New("unknown classifier kind")

// Model is a binary classifier over fixed-size feature vectors.
type Model interface {
	// Fit trains the model. Labels must be 0 or 1.
	Fit(X [][]float64, y []int) error

	// Predict returns the label for one vector.
	Predict(x []float64) int
}

// NewModel returns an untrained model of the given kind.
func NewModel(kind Kind) (Model, error) {
	switch kind {
	case KindLogistic:
		return NewLogistic(), nil
	case KindSVM:
		return NewLinearSVM(), nil
	case KindMLP:
		return NewMLP(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Train embeds every document and fits m on the result.
func Train(m Model, table *embedding.Table, docs []string, labels []int) error {
	X, err := table.EmbedAll(docs)
	if err != nil {
		return fmt.Errorf("embedding training data: %w", err)
	}
	return m.Fit(X, labels)
}

// Embedded classifies text by embedding it and running a trained model.
type Embedded struct {
	Table *embedding.Table
	Model Model
}

// NewEmbedded creates a text classifier from a table and a trained model
func NewEmbedded(table *embedding.Table, m Model) *Embedded {
	return &Embedded{Table: table, Model: m}
}

// Classify returns the predicted label for text. It returns
// embedding.ErrNoTokens when text has no usable tokens.
func (e *Embedded) Classify(_ context.Context, text string) (int, error) {
	v, err := e.Table.Embed(text)
	if err != nil {
		return 0, err
	}
	return e.Model.Predict(v), nil
}

func validate(X [][]float64, y []int) (dim int, err error) {
	if len(X) == 0 {
		return 0, errors.New("no training samples")
	}
	if len(X) != len(y) {
		return 0, fmt.Errorf("%d samples but %d labels", len(X), len(y))
	}
	dim = len(X[0])
	for i, x := range X {
		if len(x) != dim {
			return 0, fmt.Errorf("sample %d has dimension %d, want %d", i, len(x), dim)
		}
		if y[i] != Healthy && y[i] != Unhealthy {
			return 0, fmt.Errorf("sample %d has label %d, want 0 or 1", i, y[i])
		}
	}
	return dim, nil
}
