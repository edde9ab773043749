package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/domain/chapter"
)

func TestCoverageCmd_JSONReport(t *testing.T) {
	input := writeTempFile(t, "headings.yaml", sampleHeadingsYAML)
	outPath := filepath.Join(t.TempDir(), "report.json")

	_, err := runCommand(t, "coverage", "-i", input, "--format", "json", "--file", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report chapter.CoverageReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 4, report.Mapped)
	assert.Equal(t, 1, report.Excluded)
	assert.Zero(t, report.Unmapped)
	assert.InDelta(t, 1.0, report.Rate, 1e-9)
}

func TestCoverageCmd_MultipleInputs(t *testing.T) {
	a := writeTempFile(t, "a.yaml", `
headings:
  - {title: 一、编制依据, depth: 1}
`)
	b := writeTempFile(t, "b.yaml", `
headings:
  - {title: 完全陌生的标题, depth: 1}
`)
	outPath := filepath.Join(t.TempDir(), "report.json")

	_, err := runCommand(t, "coverage", "-i", a, "-i", b, "--format", "json", "--file", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var report chapter.CoverageReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Mapped)
	assert.Equal(t, 1, report.Unmapped)
	assert.InDelta(t, 0.5, report.Rate, 1e-9)
}

func TestCoverageCmd_MinRateGate(t *testing.T) {
	input := writeTempFile(t, "headings.yaml", `
headings:
  - {title: 一、编制依据, depth: 1}
  - {title: 完全陌生的标题甲, depth: 1}
`)
	outPath := filepath.Join(t.TempDir(), "report.txt")

	// 陌生标题甲 inherits Ch1 at the same depth, so coverage is 1.0 and the
	// gate passes.
	_, err := runCommand(t, "coverage", "-i", input, "--min-rate", "0.9", "--file", outPath)
	require.NoError(t, err)
}

func TestCoverageCmd_MinRateGateFails(t *testing.T) {
	input := writeTempFile(t, "headings.yaml", `
headings:
  - {title: 完全陌生的标题甲, depth: 1}
  - {title: 完全陌生的标题乙, depth: 1}
`)
	outPath := filepath.Join(t.TempDir(), "report.txt")

	_, err := runCommand(t, "coverage", "-i", input, "--min-rate", "0.9", "--file", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below required minimum")

	// The report is still written before the gate fires.
	_, statErr := os.Stat(outPath)
	assert.NoError(t, statErr)
}

func TestCoverageCmd_InvalidMinRate(t *testing.T) {
	input := writeTempFile(t, "headings.yaml", sampleHeadingsYAML)
	_, err := runCommand(t, "coverage", "-i", input, "--min-rate", "1.5")
	assert.Error(t, err)
}

//Personal.AI order the ending
