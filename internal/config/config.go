// Package config loads CareBot's settings: embedded defaults, an optional
// YAML file, then environment overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pthm/carebot/internal/classifier"
)

//go:embed configs/default.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds everything the conversation needs at startup.
type Config struct {
	// Embeddings is the word2vec text file with token vectors.
	Embeddings string `yaml:"embeddings"`

	// Dataset is the Lexicon/Label CSV used to train the classifier.
	Dataset string `yaml:"dataset"`

	// Model is an optional pre-trained model file written by "carebot train".
	// When empty the classifier is trained on Dataset at startup.
	Model string `yaml:"model"`

	// Classifier selects the backend (logistic, svm, mlp, llm).
	Classifier classifier.Kind `yaml:"classifier"`

	WordThreshold      int     `yaml:"word_threshold"`
	WPSThreshold       float64 `yaml:"wps_threshold"`
	MenuRetryBound     int     `yaml:"menu_retry_bound"`
	MinStylisticLength int     `yaml:"min_stylistic_length"`
}

// Environment variables that override file settings.
const (
	EnvEmbeddings = "CAREBOT_EMBEDDINGS"
	EnvDataset    = "CAREBOT_DATASET"
	EnvModel      = "CAREBOT_MODEL"
	EnvClassifier = "CAREBOT_CLASSIFIER"
	EnvMenuRetry  = "CAREBOT_MENU_RETRY_BOUND"
)

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return &cfg
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and the environment. A .env file in the working
// directory is loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvEmbeddings); v != "" {
		c.Embeddings = v
	}
	if v := os.Getenv(EnvDataset); v != "" {
		c.Dataset = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvClassifier); v != "" {
		c.Classifier = classifier.Kind(v)
	}
	if v := os.Getenv(EnvMenuRetry); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvMenuRetry, v)
		}
		c.MenuRetryBound = n
	}
	return nil
}

// Validate checks thresholds and the classifier kind.
func (c *Config) Validate() error {
	switch {
	case c.WordThreshold <= 0:
		return fmt.Errorf("%w: word_threshold must be positive", ErrInvalid)
	case c.WPSThreshold <= 0:
		return fmt.Errorf("%w: wps_threshold must be positive", ErrInvalid)
	case c.MenuRetryBound <= 0:
		return fmt.Errorf("%w: menu_retry_bound must be positive", ErrInvalid)
	case c.MinStylisticLength <= 0:
		return fmt.Errorf("%w: min_stylistic_length must be positive", ErrInvalid)
	}

	for _, k := range classifier.Kinds {
		if c.Classifier == k {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown classifier %q", ErrInvalid, c.Classifier)
}

// NeedsEmbeddings reports whether the configured classifier works on
// embedded text.
func (c *Config) NeedsEmbeddings() bool {
	return c.Classifier != classifier.KindLLM
}
