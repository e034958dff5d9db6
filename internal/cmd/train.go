package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/carebot/internal/classifier"
)

var (
	trainOut   string
	trainModel string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the health classifier and save it",
	Long: `Train a health classifier on the configured dataset and save its
weights, so the conversation can start without retraining.

Examples:
  carebot train --out model.json
  carebot train --model svm --out svm.json
  CAREBOT_MODEL=model.json carebot`,
	Args:         cobra.NoArgs,
	RunE:         runTrain,
	SilenceUsage: true,
}

func init() {
	trainCmd.Flags().StringVarP(&trainOut, "out", "o", "model.json", "Where to write the trained model")
	trainCmd.Flags().StringVarP(&trainModel, "model", "m", "", "Model kind to train (logistic, svm, mlp); defaults to the configured classifier")
	RootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	u := GetUI()
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	kind := cfg.Classifier
	if trainModel != "" {
		kind = classifier.Kind(trainModel)
	}
	if kind == classifier.KindLLM {
		return fmt.Errorf("%w: %s cannot be trained", classifier.ErrUnknownKind, kind)
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
	models, err := trainModels([]classifier.Kind{kind}, table, docs, labels, log, progress)
	if err != nil {
		return err
	}

	progress.Done(nil)
	progress = nil

	if err := classifier.Save(trainOut, models[0]); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), u.Styles.Success.Render(
		fmt.Sprintf("%s Trained %s on %d examples, saved to %s", u.Styles.IconSuccess, kind, len(docs), trainOut),
	))
	return nil
}
