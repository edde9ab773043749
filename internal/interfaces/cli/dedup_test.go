package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/domain/fragment"
)

const sampleFragmentsYAML = `
fragments:
  - id: frag-a
    chapter_id: Ch6
    section_title: 基础开挖
    content: 基础开挖前应复核测量基准点并做好排水措施
    density: high
    quality_rating: 0.9
    source_doc: 1
  - id: frag-b
    chapter_id: Ch6
    section_title: 基础开挖
    content: 基础开挖前应复核测量基准点并做好排水措施
    density: high
    quality_rating: 0.6
    source_doc: 2
  - id: frag-c
    chapter_id: Ch9
    section_title: 应急演练
    content: 每季度组织一次应急演练并保存演练记录
    density: medium
    quality_rating: 0.8
    source_doc: 1
  - id: frag-low
    chapter_id: Ch6
    section_title: 低密度片段
    content: 略
    density: low
    quality_rating: 0.5
    source_doc: 3
`

func TestDedupCmd_RemovesIdenticalPair(t *testing.T) {
	input := writeTempFile(t, "fragments.yaml", sampleFragmentsYAML)
	outPath := filepath.Join(t.TempDir(), "result.json")

	_, err := runCommand(t, "dedup", "-i", input,
		"--tokenizer", "bigram", "--format", "json", "--file", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result fragment.DedupResult
	require.NoError(t, json.Unmarshal(data, &result))

	require.Len(t, result.Removed, 1)
	assert.Equal(t, "frag-b", result.Removed[0].Fragment.ID.String())
	assert.Equal(t, "frag-a", result.Removed[0].DuplicateOf.ID.String())
	assert.Len(t, result.Kept, 2)
	require.Len(t, result.LowDensity, 1)
	assert.Equal(t, "frag-low", result.LowDensity[0].ID.String())
}

func TestDedupCmd_ThresholdFlag(t *testing.T) {
	input := writeTempFile(t, "fragments.yaml", sampleFragmentsYAML)
	outPath := filepath.Join(t.TempDir(), "result.json")

	// A threshold of 1.0 means only strictly-greater similarity removes,
	// which nothing can satisfy; every indexable fragment survives.
	_, err := runCommand(t, "dedup", "-i", input,
		"--tokenizer", "bigram", "--threshold", "1.0",
		"--format", "json", "--file", outPath)
	require.NoError(t, err)

	var result fragment.DedupResult
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Empty(t, result.Removed)
	assert.Len(t, result.Kept, 3)
}

func TestDedupCmd_TextOutput(t *testing.T) {
	input := writeTempFile(t, "fragments.yaml", sampleFragmentsYAML)
	outPath := filepath.Join(t.TempDir(), "result.txt")

	_, err := runCommand(t, "dedup", "-i", input,
		"--tokenizer", "bigram", "--file", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Kept:")
	assert.Contains(t, string(data), "frag-b")
}

func TestDedupCmd_UnknownTokenizer(t *testing.T) {
	input := writeTempFile(t, "fragments.yaml", sampleFragmentsYAML)
	_, err := runCommand(t, "dedup", "-i", input, "--tokenizer", "jieba")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tokenizer")
}

func TestDedupCmd_InvalidThreshold(t *testing.T) {
	input := writeTempFile(t, "fragments.yaml", sampleFragmentsYAML)
	_, err := runCommand(t, "dedup", "-i", input,
		"--tokenizer", "bigram", "--threshold", "1.5")
	assert.Error(t, err)
}

//Personal.AI order the ending
