package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.BatchSize != 15 {
		t.Errorf("default batch size = %d, want 15", cfg.BatchSize)
	}
	if cfg.DistractorsPerItem != 3 {
		t.Errorf("default distractors = %d, want 3", cfg.DistractorsPerItem)
	}
	if cfg.Source != "chapter" {
		t.Errorf("default source = %q, want chapter", cfg.Source)
	}
	if cfg.Variable != "x" {
		t.Errorf("default variable = %q, want x", cfg.Variable)
	}
	if !cfg.IncludeExplanations {
		t.Error("explanations should default on")
	}
}

func TestLoadWithoutSourcesReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BatchSize != Default().BatchSize {
		t.Errorf("batch size = %d, want default %d", cfg.BatchSize, Default().BatchSize)
	}
	if cfg.Source != "chapter" {
		t.Errorf("source = %q, want chapter", cfg.Source)
	}
	if !cfg.IncludeExplanations {
		t.Error("explanations should default on")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "batch_size: 9\nvariable: t\n")

	cfg, err := loadFrom(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BatchSize != 9 {
		t.Errorf("batch size = %d, want 9 from file", cfg.BatchSize)
	}
	if cfg.Variable != "t" {
		t.Errorf("variable = %q, want t from file", cfg.Variable)
	}
	if cfg.Source != "chapter" {
		t.Errorf("source = %q, untouched keys should keep defaults", cfg.Source)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "batch_size: 9\nsource: mcqs\n")
	t.Setenv("MCQGEN_BATCH_SIZE", "7")

	cfg, err := loadFrom(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BatchSize != 7 {
		t.Errorf("batch size = %d, want 7 from env", cfg.BatchSize)
	}
	if cfg.Source != "mcqs" {
		t.Errorf("source = %q, file value should survive for keys env leaves alone", cfg.Source)
	}
}

func TestLoadFlagBeatsEnvAndFile(t *testing.T) {
	path := writeConfigFile(t, "batch_size: 9\n")
	t.Setenv("MCQGEN_BATCH_SIZE", "7")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("batch-size", Default().BatchSize, "")
	fs.String("source", Default().Source, "")
	if err := fs.Parse([]string{"--batch-size=3"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := loadFrom(path, fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BatchSize != 3 {
		t.Errorf("batch size = %d, want 3 from flag", cfg.BatchSize)
	}
	if cfg.Source != "chapter" {
		t.Errorf("source = %q, an unchanged flag must not override", cfg.Source)
	}
}

func TestLoadDifficultiesFromEnv(t *testing.T) {
	t.Setenv("MCQGEN_DIFFICULTIES", "easy,hard")

	cfg, err := loadFrom("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Difficulties) != 2 || cfg.Difficulties[0] != "easy" || cfg.Difficulties[1] != "hard" {
		t.Errorf("difficulties = %v, want [easy hard]", cfg.Difficulties)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "batch_size: [\n")

	_, err := loadFrom(path, nil)
	if err == nil {
		t.Fatal("expected error for malformed yaml, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error should name the config file, got: %v", err)
	}
}

func TestLoadMissingFileIsFine(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.BatchSize != Default().BatchSize {
		t.Errorf("batch size = %d, want default", cfg.BatchSize)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, "batch_size"},
		{"negative batch size", func(c *Config) { c.BatchSize = -5 }, "batch_size"},
		{"zero distractors", func(c *Config) { c.DistractorsPerItem = 0 }, "distractors_per_item"},
		{"too many distractors", func(c *Config) { c.DistractorsPerItem = 4 }, "distractors_per_item"},
		{"unknown source", func(c *Config) { c.Source = "pdf" }, "source"},
		{"blank variable", func(c *Config) { c.Variable = "  " }, "variable"},
		{"unknown difficulty", func(c *Config) { c.Difficulties = []string{"easy", "brutal"} }, "difficulties"},
		{"negative keep runs", func(c *Config) { c.KeepRuns = -1 }, "keep_runs"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tc.wantField)
			}
			if !strings.Contains(err.Error(), "invalid configuration") {
				t.Errorf("error should read as a configuration error, got: %v", err)
			}
		})
	}
}

func TestValidateAcceptsKnownDifficulties(t *testing.T) {
	cfg := Default()
	cfg.Difficulties = []string{"easy", "medium", "hard"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("known difficulties should validate: %v", err)
	}
}
