package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeadingFile_YAML(t *testing.T) {
	path := writeTempFile(t, "headings.yaml", sampleHeadingsYAML)

	hf, err := readHeadingFile(path)
	require.NoError(t, err)
	assert.Equal(t, "某输电线路基础施工方案", hf.Document)
	require.Len(t, hf.Headings, 5)
	assert.Equal(t, "一、编制依据", hf.Headings[0].Title)
	assert.Equal(t, 1, hf.Headings[0].Depth)
}

func TestReadHeadingFile_JSON(t *testing.T) {
	path := writeTempFile(t, "headings.json", `{
  "headings": [
    {"title": "一、编制依据", "depth": 1},
    {"title": "1.1 国家标准", "depth": 2}
  ]
}`)

	hf, err := readHeadingFile(path)
	require.NoError(t, err)
	assert.Len(t, hf.Headings, 2)
}

func TestReadHeadingFile_DefaultsDepth(t *testing.T) {
	path := writeTempFile(t, "headings.yaml", `
headings:
  - {title: 编制依据}
`)

	hf, err := readHeadingFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, hf.Headings[0].Depth)
}

func TestReadHeadingFile_Errors(t *testing.T) {
	_, err := readHeadingFile("absent.yaml")
	assert.Error(t, err)

	empty := writeTempFile(t, "empty.yaml", "headings: []")
	_, err = readHeadingFile(empty)
	assert.Error(t, err)

	broken := writeTempFile(t, "broken.json", "{not json")
	_, err = readHeadingFile(broken)
	assert.Error(t, err)
}

func TestReadFragmentFile_AssignsIDs(t *testing.T) {
	path := writeTempFile(t, "fragments.yaml", `
fragments:
  - chapter_id: Ch6
    content: 内容甲
    density: high
    quality_rating: 0.9
    source_doc: 1
`)

	ff, err := readFragmentFile(path)
	require.NoError(t, err)
	require.Len(t, ff.Fragments, 1)
	assert.False(t, ff.Fragments[0].ID.IsZero())
}

func TestReadFragmentFile_Empty(t *testing.T) {
	path := writeTempFile(t, "fragments.yaml", "fragments: []")
	_, err := readFragmentFile(path)
	assert.Error(t, err)
}

//Personal.AI order the ending
