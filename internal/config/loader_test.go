package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "constrdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `
classifier:
  inherit_decay: 0.5
  watch_rules: true
dedup:
  threshold: 0.85
  tokenizer: bigram
log:
  level: debug
  format: console
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Classifier.InheritDecay)
	assert.True(t, cfg.Classifier.WatchRules)
	assert.Equal(t, 0.85, cfg.Dedup.Threshold)
	assert.Equal(t, config.TokenizerBigram, cfg.Dedup.Tokenizer)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset sections pick up defaults.
	assert.Equal(t, "constrdoc", cfg.Metrics.Namespace)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfigFile(t, `
dedup:
  threshold: 1.5
`)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONSTRDOC_DEDUP_THRESHOLD", "0.9")
	t.Setenv("CONSTRDOC_LOG_LEVEL", "warn")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.Dedup.Threshold)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, config.DefaultInheritDecay, cfg.Classifier.InheritDecay)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}

//Personal.AI order the ending
