// Package fragment implements cross-document deduplication of knowledge
// fragments: category-scoped Jaccard similarity over tokenized content, with
// quality-based loser selection.
package fragment

import (
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/common"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// KnowledgeFragment is one classified content section extracted from a source
// document, as produced by the upstream extraction and evaluation stages.
type KnowledgeFragment struct {
	ID common.ID `json:"id" yaml:"id"`

	// Category is the content category the fragment's section was classified
	// into.  Deduplication only ever compares fragments within one category.
	Category     taxonomy.CategoryID `json:"chapter_id" yaml:"chapter_id"`
	CategoryName string              `json:"chapter_name,omitempty" yaml:"chapter_name,omitempty"`

	// SectionTitle is the heading the fragment was extracted under.
	SectionTitle string `json:"section_title" yaml:"section_title"`

	// Content is the fragment body used for similarity comparison.
	Content string `json:"content" yaml:"content"`

	// Density grades the fragment's knowledge density; only indexable
	// densities enter the knowledge base and participate in deduplication.
	Density taxonomy.DensityLevel `json:"density" yaml:"density"`

	// QualityRating is the upstream evaluation score; when two fragments are
	// near-duplicates the lower-rated one is removed.
	QualityRating float64 `json:"quality_rating" yaml:"quality_rating"`

	// SourceDoc identifies the document the fragment came from.  On a quality
	// tie the fragment from the higher-numbered (later-ingested) document is
	// removed.
	SourceDoc common.DocID `json:"source_doc" yaml:"source_doc"`

	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// EnsureID assigns a fresh id when the fragment carries none.
func (f *KnowledgeFragment) EnsureID() {
	if f.ID == "" {
		f.ID = common.NewID()
	}
}

// Indexable reports whether the fragment's density admits it into the
// knowledge base.
func (f *KnowledgeFragment) Indexable() bool {
	return f.Density.Indexable()
}

//Personal.AI order the ending
