package logging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	// Must not panic.
	log.Info("classification started", String("corpus", "fixed"))
	log.Debug("suppressed at info level")
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	log, err := NewLogger(Config{Level: "debug", Format: "console"})
	require.NoError(t, err)
	log.Debug("visible at debug level", Int("headings", 42))
}

func TestNewLogger_UnsupportedFormat(t *testing.T) {
	_, err := NewLogger(Config{Format: "xml"})
	assert.Error(t, err)
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.log")
	log, err := NewLogger(Config{Output: path})
	require.NoError(t, err)
	log.Warn("rule file changed", String("path", "rules.yaml"))
}

func TestChildLoggers(t *testing.T) {
	log, err := NewLogger(Config{Format: "json", Output: "stdout"})
	require.NoError(t, err)

	child := log.Named("dedup").With(String("category", "Ch6"))
	require.NotNil(t, child)
	child.Info("group compared", Int("pairs", 10))
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 3}, Int("n", 3))
	assert.Equal(t, Field{Key: "rate", Value: 0.992}, Float64("rate", 0.992))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("discarded")
	assert.Equal(t, log, log.With(String("a", "b")))
	assert.Equal(t, log, log.Named("child"))
}

//Personal.AI order the ending
