package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/config"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	assert.Equal(t, config.DefaultInheritDecay, cfg.Classifier.InheritDecay)
	assert.Equal(t, config.DefaultDedupThreshold, cfg.Dedup.Threshold)
	assert.Equal(t, config.TokenizerSegmenter, cfg.Dedup.Tokenizer)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "constrdoc", cfg.Metrics.Namespace)
}

func TestApplyDefaults_PreservesSetFields(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	cfg.Dedup.Threshold = 0.9
	cfg.Dedup.Tokenizer = config.TokenizerBigram
	cfg.Log.Level = "debug"
	config.ApplyDefaults(cfg)

	assert.Equal(t, 0.9, cfg.Dedup.Threshold)
	assert.Equal(t, config.TokenizerBigram, cfg.Dedup.Tokenizer)
	assert.Equal(t, "debug", cfg.Log.Level)
}

//Personal.AI order the ending
