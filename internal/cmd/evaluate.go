package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/carebot/internal/classifier"
	"github.com/pthm/carebot/internal/reporter"
	"github.com/pthm/carebot/internal/ui"
)

var (
	testPath string
	format   string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compare classifier models on a labelled test set",
	Long: `Train every trainable model kind on the configured dataset and report
precision, recall, F1 and accuracy on a held-out test CSV.

Examples:
  carebot evaluate --test data/test.csv
  carebot evaluate --test data/test.csv --format json > scores.json`,
	Args:         cobra.NoArgs,
	RunE:         runEvaluate,
	SilenceUsage: true,
}

func init() {
	evaluateCmd.Flags().StringVarP(&testPath, "test", "t", "", "Labelled test CSV (Lexicon, Label)")
	evaluateCmd.Flags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	_ = evaluateCmd.MarkFlagRequired("test")
	RootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	u := ui.New(os.Stdout, os.Stderr, format)
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	table, err := loadEmbeddings(cfg, log, progress)
	if err != nil {
		return err
	}
	docs, labels, err := loadDataset(cfg.Dataset, log, progress)
	if err != nil {
		return err
	}
	testDocs, testLabels, err := loadDataset(testPath, log, progress)
	if err != nil {
		return err
	}

	models, err := trainModels(classifier.TrainableKinds, table, docs, labels, log, progress)
	if err != nil {
		return err
	}

	scores := make([]reporter.Score, 0, len(models))
	for i, m := range models {
		metrics, err := classifier.Evaluate(m, table, testDocs, testLabels)
		if err != nil {
			return fmt.Errorf("failed to evaluate %s: %w", classifier.TrainableKinds[i], err)
		}
		scores = append(scores, reporter.Score{Kind: classifier.TrainableKinds[i], Metrics: metrics})
	}

	// Stop progress before reporting
	progress.Done(nil)
	progress = nil

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(cmd.OutOrStdout())
	default:
		rep = reporter.NewTerminalReporter(cmd.OutOrStdout(), u.Styles)
	}

	return rep.Report(scores)
}
