package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pthm/carebot/internal/classifier"
	"github.com/pthm/carebot/internal/config"
	"github.com/pthm/carebot/internal/dataset"
	"github.com/pthm/carebot/internal/dialogue"
	"github.com/pthm/carebot/internal/embedding"
	"github.com/pthm/carebot/internal/logging"
	"github.com/pthm/carebot/internal/ui"
)

func newLogger() *slog.Logger {
	return logging.New(os.Stderr, verbose)
}

func loadConfig(log *slog.Logger) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Debug("config loaded",
		"path", configPath,
		"classifier", cfg.Classifier,
		"embeddings", cfg.Embeddings,
		"dataset", cfg.Dataset,
		"model", cfg.Model)
	return cfg, nil
}

func loadEmbeddings(cfg *config.Config, log *slog.Logger, progress *ui.ProgressController) (*embedding.Table, error) {
	progress.SetStage(ui.StageLoadEmbeddings)
	progress.SetOperation(cfg.Embeddings)

	start := time.Now()
	table, err := embedding.Load(cfg.Embeddings)
	if err != nil {
		return nil, fmt.Errorf("failed to load embeddings: %w", err)
	}
	log.Debug("embeddings loaded", "vectors", table.Len(), "dim", table.Dim(), "took", time.Since(start))
	return table, nil
}

func loadDataset(path string, log *slog.Logger, progress *ui.ProgressController) ([]string, []int, error) {
	progress.SetStage(ui.StageLoadDataset)
	progress.SetOperation(path)

	docs, labels, err := dataset.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Debug("dataset loaded", "path", path, "rows", len(docs))
	return docs, labels, nil
}

// trainModels fits one model per kind on the dataset.
func trainModels(kinds []classifier.Kind, table *embedding.Table, docs []string, labels []int, log *slog.Logger, progress *ui.ProgressController) ([]classifier.Model, error) {
	progress.SetStage(ui.StageTrain)
	progress.SetStepCount(len(kinds))

	models := make([]classifier.Model, 0, len(kinds))
	for _, kind := range kinds {
		progress.StepStart(string(kind))

		m, err := classifier.NewModel(kind)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		if err := classifier.Train(m, table, docs, labels); err != nil {
			return nil, fmt.Errorf("failed to train %s: %w", kind, err)
		}
		log.Debug("model trained", "kind", kind, "took", time.Since(start))
		models = append(models, m)

		progress.StepDone()
	}
	return models, nil
}

// buildClassifier returns the health classifier selected by cfg: the LLM
// backend, a saved model, or a model trained on the dataset.
func buildClassifier(cfg *config.Config, log *slog.Logger, progress *ui.ProgressController) (dialogue.HealthClassifier, error) {
	progress.SetStage(ui.StageLoadConfig)

	if !cfg.NeedsEmbeddings() {
		llm := classifier.NewLLM()
		if llm == nil {
			return nil, errors.New("classifier llm requires ANTHROPIC_API_KEY")
		}
		log.Debug("using LLM classifier")
		return llm, nil
	}

	table, err := loadEmbeddings(cfg, log, progress)
	if err != nil {
		return nil, err
	}

	if cfg.Model != "" {
		m, err := classifier.Load(cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to load model: %w", err)
		}
		log.Debug("model loaded", "path", cfg.Model)
		return classifier.NewEmbedded(table, m), nil
	}

	docs, labels, err := loadDataset(cfg.Dataset, log, progress)
	if err != nil {
		return nil, err
	}
	models, err := trainModels([]classifier.Kind{cfg.Classifier}, table, docs, labels, log, progress)
	if err != nil {
		return nil, err
	}
	return classifier.NewEmbedded(table, models[0]), nil
}
