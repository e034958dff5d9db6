package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pthm/carebot/internal/classifier"
)

func testScores() []Score {
	return []Score{
		{Kind: classifier.KindLogistic, Metrics: classifier.Metrics{Precision: 0.8, Recall: 0.6, F1: 0.6857, Accuracy: 0.75}},
		{Kind: classifier.KindSVM, Metrics: classifier.Metrics{Precision: 0.9, Recall: 0.9, F1: 0.9, Accuracy: 0.9}},
	}
}

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name   string
		scores []Score
		want   Summary
	}{
		{
			name:   "empty",
			scores: nil,
			want:   Summary{},
		},
		{
			name:   "best by f1",
			scores: testScores(),
			want:   Summary{Models: 2, Best: classifier.KindSVM, BestF1: 0.9},
		},
		{
			name: "tie keeps first",
			scores: []Score{
				{Kind: classifier.KindLogistic, Metrics: classifier.Metrics{F1: 0.5}},
				{Kind: classifier.KindSVM, Metrics: classifier.Metrics{F1: 0.5}},
			},
			want: Summary{Models: 2, Best: classifier.KindLogistic, BestF1: 0.5},
		},
		{
			name: "degraded",
			scores: []Score{
				{Kind: classifier.KindLogistic, Metrics: classifier.Metrics{Accuracy: 0.5}},
				{Kind: classifier.KindSVM, Metrics: classifier.Metrics{F1: 0.4}},
			},
			want: Summary{Models: 2, Best: classifier.KindSVM, BestF1: 0.4, Degraded: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeSummary(tt.scores); got != tt.want {
				t.Errorf("ComputeSummary() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(testScores()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Models) != 2 {
		t.Fatalf("got %d models, want 2", len(out.Models))
	}
	if out.Models[1].Kind != "svm" || out.Models[1].Recall != 0.9 {
		t.Errorf("Models[1] = %+v", out.Models[1])
	}
	if out.Summary.Best != "svm" {
		t.Errorf("Summary.Best = %q, want svm", out.Summary.Best)
	}
	if !strings.Contains(buf.String(), `"precision": 0.8`) {
		t.Errorf("metrics not flattened into model entry:\n%s", buf.String())
	}
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf, nil).Report(testScores()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	svm := strings.Index(out, "svm")
	logistic := strings.Index(out, "logistic")
	if svm < 0 || logistic < 0 || svm > logistic {
		t.Errorf("expected svm row before logistic row:\n%s", out)
	}
	for _, want := range []string{"0.686", "OK: Best model: svm (F1 0.900)", "Evaluated 2 models"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf, nil).Report(nil); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No models evaluated") {
		t.Errorf("output = %q", buf.String())
	}
}
