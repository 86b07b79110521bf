// Package config loads and validates pipeline-level settings. LLM provider
// credentials are resolved separately by internal/llm.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the knobs for a generation run.
type Config struct {
	// BatchSize is how many concepts each generation pass pulls from the
	// work queue.
	BatchSize int `mapstructure:"batch_size"`

	// DistractorsPerItem is how many wrong options accompany the correct
	// answer. The assembler pads from the filler pool when distractor
	// generation comes up short.
	DistractorsPerItem int `mapstructure:"distractors_per_item"`

	// Source names the input kind: "chapter" prose or existing "mcqs".
	Source string `mapstructure:"source"`

	// Variable is the integration variable assumed by symbolic checks.
	Variable string `mapstructure:"variable"`

	// Difficulties restricts extraction to the listed levels. Empty means
	// no filter.
	Difficulties []string `mapstructure:"difficulties"`

	// IncludeExplanations toggles the explanation section in exports.
	IncludeExplanations bool `mapstructure:"include_explanations"`

	// KeepRuns bounds how many runs of item snapshots the store retains
	// when pruning. Zero disables pruning.
	KeepRuns int `mapstructure:"keep_runs"`
}

// Default returns the configuration used when no other source sets a value.
func Default() Config {
	return Config{
		BatchSize:           15,
		DistractorsPerItem:  3,
		Source:              "chapter",
		Variable:            "x",
		IncludeExplanations: true,
		KeepRuns:            20,
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("batch_size", def.BatchSize)
	v.SetDefault("distractors_per_item", def.DistractorsPerItem)
	v.SetDefault("source", def.Source)
	v.SetDefault("variable", def.Variable)
	v.SetDefault("difficulties", def.Difficulties)
	v.SetDefault("include_explanations", def.IncludeExplanations)
	v.SetDefault("keep_runs", def.KeepRuns)
}

// flagKeys maps config keys to the CLI flag names that override them.
var flagKeys = map[string]string{
	"batch_size":           "batch-size",
	"distractors_per_item": "distractors",
	"source":               "source",
	"variable":             "variable",
	"difficulties":         "difficulty",
	"include_explanations": "explanations",
	"keep_runs":            "keep-runs",
}

// Load resolves the configuration from all sources. Precedence, highest
// first: CLI flags, MCQGEN_* environment variables, ~/.mcqgen/config.yaml,
// built-in defaults. flags may be nil.
//
// Load does not validate; callers run Validate before starting a run.
func Load(flags *pflag.FlagSet) (Config, error) {
	return loadFrom(defaultConfigPath(), flags)
}

func loadFrom(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MCQGEN")
	v.AutomaticEnv()

	// The config file is optional; a present but unreadable one is an error.
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mcqgen", "config.yaml")
}
