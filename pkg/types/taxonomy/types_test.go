package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentCategoryIDs(t *testing.T) {
	ids := ContentCategoryIDs()
	assert.Len(t, ids, 10)
	assert.Equal(t, CategoryCh1, ids[0])
	assert.Equal(t, CategoryCh10, ids[9])
}

func TestCategoryID_IsContent(t *testing.T) {
	for _, id := range ContentCategoryIDs() {
		assert.True(t, id.IsContent(), id)
	}
	assert.False(t, CategoryUnmapped.IsContent())
	assert.False(t, CategoryExcluded.IsContent())
	assert.False(t, CategoryID("Ch11").IsContent())
}

func TestCategoryID_IsValid(t *testing.T) {
	assert.True(t, CategoryCh7.IsValid())
	assert.True(t, CategoryUnmapped.IsValid())
	assert.True(t, CategoryExcluded.IsValid())
	assert.False(t, CategoryID("").IsValid())
	assert.False(t, CategoryID("chapter7").IsValid())
}

func TestMatchType_IsValid(t *testing.T) {
	for _, m := range []MatchType{
		MatchExact, MatchVariant, MatchRegex, MatchInherited,
		MatchExcluded, MatchUnmapped, MatchSemantic,
	} {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, MatchType("fuzzy").IsValid())
}

func TestDensityLevel(t *testing.T) {
	assert.True(t, DensityHigh.Indexable())
	assert.True(t, DensityMedium.Indexable())
	assert.False(t, DensityLow.Indexable())
	assert.True(t, DensityLow.IsValid())
	assert.False(t, DensityLevel("extreme").IsValid())
}

//Personal.AI order the ending
