package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TargetSize != DefaultTargetSize {
		t.Fatalf("target size = %d, want %d", cfg.TargetSize, DefaultTargetSize)
	}
	if cfg.MinLength != 2 || cfg.MaxLength != 12 {
		t.Fatalf("length window = [%d,%d]", cfg.MinLength, cfg.MaxLength)
	}
	if err := cfg.Weights.Validate(); err != nil {
		t.Fatalf("default weights: %v", err)
	}
	if !cfg.Threshold.Relax || cfg.Threshold.Floor >= cfg.Threshold.Start {
		t.Fatalf("threshold defaults = %+v", cfg.Threshold)
	}
}

func TestLoadOverridesAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `
target_size: 10
max_cycles: 3
threshold:
  start: 0.7
  floor: 0.4
  step: 0.1
  relax: true
classifier:
  enabled: true
  model: gpt-4o-mini
  batch_size: 4
  max_retries: 2
  backoff: 1s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TargetSize != 10 || cfg.MaxCycles != 3 {
		t.Fatalf("overrides ignored: %+v", cfg)
	}
	if cfg.Classifier.Backoff.Std() != time.Second {
		t.Fatalf("backoff = %v", cfg.Classifier.Backoff)
	}
	// Unset sections still get defaults.
	if cfg.BatchSize != 500 || cfg.Outputs.WordList == "" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `
weights:
  syllable: 0.9
  length: 0.9
  familiarity: 0.1
  level: 0.1
  frequency: 0.1
  phonetic: 0.1
  clean: 0.1
  appropriate: 0.1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected weight-sum validation failure")
	}
}

func TestValidateThresholdCoherence(t *testing.T) {
	cfg := Default()
	cfg.Threshold.Floor = cfg.Threshold.Start + 0.1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("floor above start must fail validation")
	}
	cfg = Default()
	cfg.Threshold.Step = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("zero step with relaxation enabled must fail validation")
	}
}
