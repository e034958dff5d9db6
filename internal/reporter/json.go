package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/carebot/internal/classifier"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Models  []JSONScore `json:"models"`
	Summary JSONSummary `json:"summary"`
}

// JSONScore represents one model's metrics in JSON format
type JSONScore struct {
	Kind string `json:"kind"`
	classifier.Metrics
}

// JSONSummary represents the summary in JSON format
type JSONSummary struct {
	Models   int     `json:"models"`
	Best     string  `json:"best,omitempty"`
	BestF1   float64 `json:"bestF1"`
	Degraded int     `json:"degraded"`
}

// Report outputs scores as JSON
func (r *JSONReporter) Report(scores []Score) error {
	summary := ComputeSummary(scores)
	output := JSONOutput{
		Models: make([]JSONScore, 0, len(scores)),
		Summary: JSONSummary{
			Models:   summary.Models,
			Best:     string(summary.Best),
			BestF1:   summary.BestF1,
			Degraded: summary.Degraded,
		},
	}

	for _, sc := range scores {
		output.Models = append(output.Models, JSONScore{
			Kind:    string(sc.Kind),
			Metrics: sc.Metrics,
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
