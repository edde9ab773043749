package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/ConstrDoc-Intelligence/internal/config"
)

// validConfig returns a Config that passes Validate() with defaults applied.
func validConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	return cfg
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_InheritDecayRange(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{-0.1, 0, 1.01, 2} {
		cfg := validConfig()
		cfg.Classifier.InheritDecay = v
		err := cfg.Validate()
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "inherit_decay")
	}
}

func TestConfig_Validate_DedupThresholdRange(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{-1, 0, 1.5} {
		cfg := validConfig()
		cfg.Dedup.Threshold = v
		err := cfg.Validate()
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "dedup.threshold")
	}

	cfg := validConfig()
	cfg.Dedup.Threshold = 1
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_TokenizerName(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Dedup.Tokenizer = "jieba"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dedup.tokenizer")

	cfg.Dedup.Tokenizer = config.TokenizerBigram
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_LogFields(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Log.Level = "trace"
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Log.Format = "xml"
	require.Error(t, cfg.Validate())
}

func TestConfig_Validate_MetricsNamespace(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics.namespace")
}

//Personal.AI order the ending
