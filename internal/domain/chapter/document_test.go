package chapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/turtacn/ConstrDoc-Intelligence/pkg/errors"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

func newTestDocumentClassifier(t *testing.T, opts ...DocumentOption) *DocumentClassifier {
	t.Helper()
	d, err := NewDocumentClassifier(newTestClassifier(t), opts...)
	require.NoError(t, err)
	return d
}

func TestNewDocumentClassifier_Validation(t *testing.T) {
	_, err := NewDocumentClassifier(nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeClassifierNotReady, apperrors.GetCode(err))

	_, err = NewDocumentClassifier(newTestClassifier(t), WithInheritDecay(0))
	require.Error(t, err)

	_, err = NewDocumentClassifier(newTestClassifier(t), WithInheritDecay(1.5))
	require.Error(t, err)
}

func TestMapDocument_SubHeadingsInherit(t *testing.T) {
	d := newTestDocumentClassifier(t)

	results := d.MapDocument([]Heading{
		{Title: "一、编制依据", Depth: 1},
		{Title: "1.1 国家标准", Depth: 2},
		{Title: "1.2 行业规程", Depth: 2},
	})
	require.Len(t, results, 3)

	assert.Equal(t, taxonomy.CategoryCh1, results[0].Category)
	assert.Equal(t, taxonomy.MatchExact, results[0].MatchType)

	for _, r := range results[1:] {
		assert.Equal(t, taxonomy.CategoryCh1, r.Category, r.OriginalTitle)
		assert.Equal(t, taxonomy.MatchInherited, r.MatchType, r.OriginalTitle)
		// Inheritance under an anchor keeps the anchor's confidence.
		assert.Equal(t, ConfidenceExact, r.Confidence, r.OriginalTitle)
		assert.Contains(t, r.MatchedKeyword, "继承自", r.OriginalTitle)
	}
}

// A deep heading whose own text matches another chapter still belongs to its
// anchor: a reference list entry like 安全生产法 under 编制依据 must not
// wander off to the safety chapter.
func TestMapDocument_DeepHeadingCannotOverruleAnchor(t *testing.T) {
	d := newTestDocumentClassifier(t)

	results := d.MapDocument([]Heading{
		{Title: "一、编制依据", Depth: 1},
		{Title: "1.1 法律法规", Depth: 2},
		{Title: "安全生产法", Depth: 3},
	})
	require.Len(t, results, 3)

	assert.Equal(t, taxonomy.CategoryCh1, results[2].Category)
	assert.Equal(t, taxonomy.MatchInherited, results[2].MatchType)
	assert.Equal(t, ConfidenceExact, results[2].Confidence)

	// Standalone, the same title classifies to the safety chapter.
	standalone := newTestClassifier(t).MapTitle("安全生产法")
	assert.Equal(t, taxonomy.CategoryCh8, standalone.Category)
}

func TestMapDocument_SameDepthReanchors(t *testing.T) {
	d := newTestDocumentClassifier(t)

	results := d.MapDocument([]Heading{
		{Title: "一、编制依据", Depth: 1},
		{Title: "二、工程概况", Depth: 1},
		{Title: "2.1 工程范围", Depth: 2},
	})
	require.Len(t, results, 3)

	assert.Equal(t, taxonomy.CategoryCh1, results[0].Category)
	assert.Equal(t, taxonomy.CategoryCh2, results[1].Category)
	assert.Equal(t, taxonomy.CategoryCh2, results[2].Category)
}

func TestMapDocument_SameDepthUnmappedInheritsWithDecay(t *testing.T) {
	d := newTestDocumentClassifier(t)

	results := d.MapDocument([]Heading{
		{Title: "一、编制依据", Depth: 1},
		{Title: "补充说明事项", Depth: 1},
	})
	require.Len(t, results, 2)

	r := results[1]
	assert.Equal(t, taxonomy.CategoryCh1, r.Category)
	assert.Equal(t, taxonomy.MatchInherited, r.MatchType)
	assert.InDelta(t, ConfidenceExact*DefaultInheritDecay, r.Confidence, 1e-9)
}

func TestMapDocument_CustomDecay(t *testing.T) {
	d := newTestDocumentClassifier(t, WithInheritDecay(0.5))

	results := d.MapDocument([]Heading{
		{Title: "一、编制依据", Depth: 1},
		{Title: "补充说明事项", Depth: 1},
	})
	assert.InDelta(t, 0.5, results[1].Confidence, 1e-9)
}

func TestMapDocument_ExcludedLeavesContextUntouched(t *testing.T) {
	d := newTestDocumentClassifier(t)

	results := d.MapDocument([]Heading{
		{Title: "一、编制依据", Depth: 1},
		{Title: "审核人：", Depth: 2},
		{Title: "1.2 行业规程", Depth: 2},
	})
	require.Len(t, results, 3)

	assert.Equal(t, taxonomy.CategoryExcluded, results[1].Category)
	assert.Equal(t, taxonomy.CategoryCh1, results[2].Category)
	assert.Equal(t, ConfidenceExact, results[2].Confidence)
}

func TestMapDocument_NoAnchorStaysUnmapped(t *testing.T) {
	d := newTestDocumentClassifier(t)

	results := d.MapDocument([]Heading{
		{Title: "完全陌生的标题", Depth: 1},
		{Title: "另一个陌生标题", Depth: 2},
	})
	require.Len(t, results, 2)

	assert.Equal(t, taxonomy.CategoryUnmapped, results[0].Category)
	// No anchor exists yet, so the deep heading stays unmapped too.
	assert.Equal(t, taxonomy.CategoryUnmapped, results[1].Category)
}

// A direct match anchors even when it first appears deep in the outline.
func TestMapDocument_DeepFirstMatchAnchors(t *testing.T) {
	d := newTestDocumentClassifier(t)

	results := d.MapDocument([]Heading{
		{Title: "说明", Depth: 1},
		{Title: "3.2.1 基础施工", Depth: 3},
		{Title: "3.2.2 回填夯实", Depth: 4},
	})
	require.Len(t, results, 3)

	assert.Equal(t, taxonomy.CategoryCh6, results[1].Category)
	assert.Equal(t, taxonomy.CategoryCh6, results[2].Category)
	assert.Equal(t, taxonomy.MatchInherited, results[2].MatchType)
}

func TestMapDocument_Empty(t *testing.T) {
	d := newTestDocumentClassifier(t)
	assert.Empty(t, d.MapDocument(nil))
}

//Personal.AI order the ending
