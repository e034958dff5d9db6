package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/carebot/internal/dialogue"
	"github.com/pthm/carebot/internal/style"
	"github.com/pthm/carebot/internal/ui"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

// RootCmd runs a conversation on stdin/stdout.
var RootCmd = &cobra.Command{
	Use:   "carebot",
	Short: "A conversational health check-in agent",
	Long: `carebot greets you, records your name and date of birth, asks how
you are feeling and classifies the answer as healthy or unhealthy using
word embeddings and a trained classifier.

It then runs an informal stylistic analysis of a longer answer and reports
the psychological correlates of your writing style, before offering to
redo either check or quit.`,
	Args:         cobra.NoArgs,
	RunE:         runChat,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
}

// GetUI returns a UI bound to the process's stdout and stderr.
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, "terminal")
}

func runChat(cmd *cobra.Command, args []string) error {
	u := GetUI()
	log := newLogger()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	progress := u.StartProgress()
	cls, err := buildClassifier(cfg, log, progress)
	progress.Done(err)
	if err != nil {
		return err
	}

	d := dialogue.New(cmd.InOrStdin(), cmd.OutOrStdout(), u.Styles, dialogue.Options{
		Classifier:         cls,
		Tagger:             style.NewProseTagger(),
		WordThreshold:      cfg.WordThreshold,
		WPSThreshold:       cfg.WPSThreshold,
		MenuRetryBound:     cfg.MenuRetryBound,
		MinStylisticLength: cfg.MinStylisticLength,
		Logger:             log,
	})
	if err := d.Run(cmd.Context()); err != nil {
		return fmt.Errorf("conversation failed: %w", err)
	}
	log.Debug("conversation finished", "user", d.Profile().Name, "dob", d.Profile().DateOfBirth)
	return nil
}
