// Package config provides configuration loading, defaults, and validation for
// the ConstrDoc-Intelligence engine.
package config

import (
	"fmt"
)

// Config is the root configuration for the engine.  Field tags follow viper's
// mapstructure convention so that YAML keys and CONSTRDOC_* environment
// variables map onto the same structure.
type Config struct {
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Dedup      DedupConfig      `mapstructure:"dedup"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ClassifierConfig controls the chapter classification stage.
type ClassifierConfig struct {
	// RulesPath is an optional YAML rule file overriding the built-in rule
	// corpus.  Empty means use the built-in rules.
	RulesPath string `mapstructure:"rules_path"`

	// InheritDecay is the confidence multiplier applied when a same-level
	// heading inherits its predecessor's category instead of re-anchoring.
	InheritDecay float64 `mapstructure:"inherit_decay"`

	// WatchRules enables hot-reloading of RulesPath on file change.
	WatchRules bool `mapstructure:"watch_rules"`
}

// DedupConfig controls the cross-document deduplication stage.
type DedupConfig struct {
	// Threshold is the Jaccard similarity above which two fragments of the
	// same category are considered near-duplicates.  Must be in (0, 1].
	Threshold float64 `mapstructure:"threshold"`

	// Tokenizer selects the tokenization backend: "segmenter" for dictionary
	// word segmentation, "bigram" for the character bigram fallback.
	Tokenizer string `mapstructure:"tokenizer"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	Output       string `mapstructure:"output"`
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// MetricsConfig controls Prometheus metrics collection.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Validate checks cross-field consistency of the configuration.  It must be
// called after ApplyDefaults so that unset optional fields are populated.
func (c *Config) Validate() error {
	if c.Classifier.InheritDecay <= 0 || c.Classifier.InheritDecay > 1 {
		return fmt.Errorf("classifier.inherit_decay must be in (0, 1], got %v", c.Classifier.InheritDecay)
	}
	if c.Dedup.Threshold <= 0 || c.Dedup.Threshold > 1 {
		return fmt.Errorf("dedup.threshold must be in (0, 1], got %v", c.Dedup.Threshold)
	}
	switch c.Dedup.Tokenizer {
	case TokenizerSegmenter, TokenizerBigram:
	default:
		return fmt.Errorf("dedup.tokenizer must be %q or %q, got %q",
			TokenizerSegmenter, TokenizerBigram, c.Dedup.Tokenizer)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug/info/warn/error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required when metrics.enabled is true")
	}
	return nil
}

//Personal.AI order the ending
