package classifier

import (
	"fmt"

	"github.com/pthm/carebot/internal/embedding"
)

// Metrics summarises predictions against gold labels. Precision, recall and
// F1 are computed for the unhealthy (1) class.
type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Accuracy  float64 `json:"accuracy"`
}

// Score compares predicted labels with gold labels. Ratios with a zero
// denominator are reported as 0.
func Score(gold, predicted []int) (Metrics, error) {
	if len(gold) != len(predicted) {
		return Metrics{}, fmt.Errorf("%d gold labels but %d predictions", len(gold), len(predicted))
	}
	if len(gold) == 0 {
		return Metrics{}, nil
	}

	var tp, fp, fn, correct int
	for i := range gold {
		g, p := gold[i], predicted[i]
		if g == p {
			correct++
		}
		switch {
		case p == Unhealthy && g == Unhealthy:
			tp++
		case p == Unhealthy:
			fp++
		case g == Unhealthy:
			fn++
		}
	}

	m := Metrics{
		Precision: ratio(tp, tp+fp),
		Recall:    ratio(tp, tp+fn),
		Accuracy:  ratio(correct, len(gold)),
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m, nil
}

// Evaluate embeds docs, predicts with m and scores the predictions.
func Evaluate(m Model, table *embedding.Table, docs []string, labels []int) (Metrics, error) {
	X, err := table.EmbedAll(docs)
	if err != nil {
		return Metrics{}, fmt.Errorf("embedding test data: %w", err)
	}

	predicted := make([]int, len(X))
	for i, x := range X {
		predicted[i] = m.Predict(x)
	}
	return Score(labels, predicted)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
