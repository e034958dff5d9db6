package reporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/pthm/carebot/internal/ui"
)

// TerminalReporter outputs results to the terminal as a styled table
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	if styles == nil {
		styles = ui.NewStyles(false)
	}
	return &TerminalReporter{w: w, styles: styles}
}

// Report outputs scores to the terminal, best F1 first
func (r *TerminalReporter) Report(scores []Score) error {
	if len(scores) == 0 {
		fmt.Fprintln(r.w, r.styles.Warning.Render(r.styles.IconWarning+" No models evaluated"))
		return nil
	}

	sorted := make([]Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Metrics.F1 > sorted[j].Metrics.F1
	})

	fmt.Fprintln(r.w, r.styles.Header.Render(fmt.Sprintf("%-10s %9s %9s %9s %9s", "model", "precision", "recall", "f1", "accuracy")))
	fmt.Fprintln(r.w, r.styles.Separator.Render("─────────────────────────────────────────────────"))
	for _, sc := range sorted {
		r.printScore(sc)
	}

	r.printSummary(scores)
	return nil
}

func (r *TerminalReporter) printScore(sc Score) {
	m := sc.Metrics
	line := fmt.Sprintf("%-10s %9.3f %9.3f %9.3f %9.3f", sc.Kind, m.Precision, m.Recall, m.F1, m.Accuracy)
	if m.F1 == 0 {
		line = r.styles.Warning.Render(line)
	}
	fmt.Fprintln(r.w, line)
}

func (r *TerminalReporter) printSummary(scores []Score) {
	summary := ComputeSummary(scores)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Success.Render(fmt.Sprintf("%s Best model: %s (F1 %.3f)", r.styles.IconSuccess, summary.Best, summary.BestF1)))
	if summary.Degraded > 0 {
		fmt.Fprintln(r.w, r.styles.Warning.Render(fmt.Sprintf("%s %d of %d models never predicted the unhealthy class correctly", r.styles.IconWarning, summary.Degraded, summary.Models)))
	}
	fmt.Fprintln(r.w, r.styles.Subheader.Render(fmt.Sprintf("Evaluated %d models", summary.Models)))
}
