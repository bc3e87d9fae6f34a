// internal/config/config.go
//
// Run configuration for the vocabulary builder. One Config describes one
// pipeline run end to end: inputs, scoring weights, convergence budgets,
// classifier settings, and output locations. Nothing is shared across runs;
// the redesign deliberately replaced module-level state with this object.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dirvine/four-word-networking/internal/score"
)

// DefaultTargetSize is the production vocabulary cardinality: one word per
// 16-bit segment value.
const DefaultTargetSize = 1 << 16

// ThresholdConfig governs acceptance-bar relaxation.
type ThresholdConfig struct {
	// Start is the initial acceptance threshold on the total score.
	Start float64 `yaml:"start"`
	// Floor is the lowest the threshold may relax to.
	Floor float64 `yaml:"floor"`
	// Step is subtracted from the threshold on each relaxation.
	Step float64 `yaml:"step"`
	// Relax disables relaxation entirely when false; a stalled pass then
	// aborts the run.
	Relax bool `yaml:"relax"`
}

// ClassifierConfig describes the external word validator.
type ClassifierConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	// BatchSize bounds how many words one request carries.
	BatchSize  int      `yaml:"batch_size"`
	MaxRetries int      `yaml:"max_retries"`
	Backoff    Duration `yaml:"backoff"`
	// Borderline is the band above the threshold within which a candidate
	// is double-checked by the classifier before acceptance.
	Borderline float64 `yaml:"borderline"`
}

// SyntheticConfig controls the last-resort naming scheme used when every
// real source is exhausted.
type SyntheticConfig struct {
	Enabled bool `yaml:"enabled"`
	// Category prefixes generated names, e.g. "zone" -> zoneaab.
	Category string `yaml:"category"`
}

// InputsConfig lists the reference files feeding a run.
type InputsConfig struct {
	// Corpora are frequency-ordered word lists, highest priority first.
	Corpora []string `yaml:"corpora"`
	// Reserve is the frequency-ordered backfill pool.
	Reserve string `yaml:"reserve"`
	// Seed optionally preloads an existing vocabulary for refinement.
	Seed           string `yaml:"seed"`
	Banned         string `yaml:"banned"`
	Pronunciations string `yaml:"pronunciations"`
	Familiar       string `yaml:"familiar"`
	Levels         string `yaml:"levels"`
}

// OutputsConfig lists where run artifacts land.
type OutputsConfig struct {
	WordList  string `yaml:"word_list"`
	ChangeLog string `yaml:"change_log"`
	Logbook   string `yaml:"logbook"`
	Report    string `yaml:"report"`
}

// Config models one vocabulary pipeline run.
type Config struct {
	TargetSize int `yaml:"target_size"`
	MinLength  int `yaml:"min_length"`
	MaxLength  int `yaml:"max_length"`
	// BatchSize is the pass batch granularity over the candidate pool.
	BatchSize int `yaml:"batch_size"`
	// MaxCycles bounds growing->relaxing cycles before the run aborts.
	MaxCycles int `yaml:"max_cycles"`

	Weights    score.Weights    `yaml:"weights"`
	Threshold  ThresholdConfig  `yaml:"threshold"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Synthetic  SyntheticConfig  `yaml:"synthetic"`
	Inputs     InputsConfig     `yaml:"inputs"`
	Outputs    OutputsConfig    `yaml:"outputs"`
}

// Default returns the production configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file, fills defaults, and validates the result.
// A missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TargetSize == 0 {
		c.TargetSize = DefaultTargetSize
	}
	if c.MinLength == 0 {
		c.MinLength = 2
	}
	if c.MaxLength == 0 {
		c.MaxLength = 12
	}
	if c.BatchSize == 0 {
		c.BatchSize = 500
	}
	if c.MaxCycles == 0 {
		c.MaxCycles = 8
	}
	zero := score.Weights{}
	if c.Weights == zero {
		c.Weights = score.DefaultWeights()
	}
	if c.Threshold == (ThresholdConfig{}) {
		c.Threshold = ThresholdConfig{Start: 0.60, Floor: 0.35, Step: 0.05, Relax: true}
	}
	if c.Classifier.Model == "" {
		c.Classifier.Model = "gpt-4o-mini"
	}
	if c.Classifier.BatchSize == 0 {
		c.Classifier.BatchSize = 500
	}
	if c.Classifier.MaxRetries == 0 {
		c.Classifier.MaxRetries = 5
	}
	if c.Classifier.Backoff == 0 {
		c.Classifier.Backoff = Duration(2 * time.Second)
	}
	if c.Classifier.Borderline == 0 {
		c.Classifier.Borderline = 0.05
	}
	if c.Synthetic.Category == "" {
		c.Synthetic.Category = "zone"
	}
	if c.Outputs.WordList == "" {
		c.Outputs.WordList = "data/word_list_65k.txt"
	}
	if c.Outputs.ChangeLog == "" {
		c.Outputs.ChangeLog = "data/changes.csv"
	}
	if c.Outputs.Logbook == "" {
		c.Outputs.Logbook = "data/run.log"
	}
	if c.Outputs.Report == "" {
		c.Outputs.Report = "data/report.txt"
	}
}

func (c *Config) normalize() {
	c.Synthetic.Category = strings.ToLower(strings.TrimSpace(c.Synthetic.Category))
	c.Classifier.Model = strings.TrimSpace(c.Classifier.Model)
	trimmed := c.Inputs.Corpora[:0]
	for _, path := range c.Inputs.Corpora {
		if p := strings.TrimSpace(path); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	c.Inputs.Corpora = trimmed
}

// Validate checks structural invariants: a sane length window, a weight
// vector summing to one, and coherent threshold/budget settings.
func (c *Config) Validate() error {
	if c.TargetSize < 1 {
		return fmt.Errorf("target_size must be positive")
	}
	if c.MinLength < 1 || c.MaxLength < c.MinLength {
		return fmt.Errorf("length window [%d,%d] is invalid", c.MinLength, c.MaxLength)
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.Threshold.Start < 0 || c.Threshold.Start > 1 {
		return fmt.Errorf("threshold.start %.2f outside [0,1]", c.Threshold.Start)
	}
	if c.Threshold.Floor < 0 || c.Threshold.Floor > c.Threshold.Start {
		return fmt.Errorf("threshold.floor %.2f must be within [0, start]", c.Threshold.Floor)
	}
	if c.Threshold.Relax && c.Threshold.Step <= 0 {
		return fmt.Errorf("threshold.step must be positive when relaxation is enabled")
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive")
	}
	if c.MaxCycles < 1 {
		return fmt.Errorf("max_cycles must be positive")
	}
	if c.Classifier.Enabled {
		if c.Classifier.BatchSize < 1 {
			return fmt.Errorf("classifier.batch_size must be positive")
		}
		if c.Classifier.MaxRetries < 1 {
			return fmt.Errorf("classifier.max_retries must be positive")
		}
	}
	if c.Synthetic.Enabled && c.Synthetic.Category == "" {
		return fmt.Errorf("synthetic.category is required when synthetic fallback is enabled")
	}
	return nil
}
