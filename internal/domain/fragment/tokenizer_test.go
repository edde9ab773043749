package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigramTokenizer(t *testing.T) {
	tok := NewBigramTokenizer()
	assert.Equal(t, "bigram", tok.Name())

	tokens := tok.Tokenize("基础开挖")
	assert.Equal(t, set("基础", "础开", "开挖"), tokens)

	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("基"))
}

func TestSegmenterTokenizer(t *testing.T) {
	tok, err := NewSegmenterTokenizer()
	require.NoError(t, err)
	assert.Equal(t, "segmenter", tok.Name())

	tokens := tok.Tokenize("基础开挖前应复核测量基准点")
	assert.NotEmpty(t, tokens)
	// Single-rune tokens are filtered out.
	for token := range tokens {
		assert.GreaterOrEqual(t, len([]rune(token)), minTokenRunes, token)
	}
}

func TestNewDefaultTokenizer(t *testing.T) {
	tok := NewDefaultTokenizer(nil)
	require.NotNil(t, tok)
	assert.NotEmpty(t, tok.Tokenize("混凝土浇筑完成后及时养护"))
}

//Personal.AI order the ending
