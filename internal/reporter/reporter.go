package reporter

import (
	"github.com/pthm/carebot/internal/classifier"
)

// Reporter defines the interface for outputting evaluation results
type Reporter interface {
	// Report outputs the score of every evaluated model
	Report(scores []Score) error
}

// Score is the evaluation of one model kind on the test set
type Score struct {
	Kind    classifier.Kind
	Metrics classifier.Metrics
}

// Summary holds summary statistics for an evaluation run
type Summary struct {
	Models   int
	Best     classifier.Kind
	BestF1   float64
	Degraded int
}

// ComputeSummary computes summary statistics from scores. The best model is
// the one with the highest F1; ties keep the earlier model.
func ComputeSummary(scores []Score) Summary {
	s := Summary{Models: len(scores)}

	for i, sc := range scores {
		if i == 0 || sc.Metrics.F1 > s.BestF1 {
			s.Best = sc.Kind
			s.BestF1 = sc.Metrics.F1
		}
		if sc.Metrics.F1 == 0 {
			s.Degraded++
		}
	}

	return s
}
