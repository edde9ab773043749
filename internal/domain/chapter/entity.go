// Package chapter implements rule-driven classification of construction-method
// document headings onto the standard ten-chapter structure, depth-based
// category inheritance across a document's heading sequence, and corpus-level
// coverage reporting.
package chapter

import (
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Confidence scale
// ─────────────────────────────────────────────────────────────────────────────

// Confidence values emitted per match tier.  The scale is ordinal, not
// probabilistic: downstream consumers only compare and threshold.
const (
	ConfidenceExact   = 1.0
	ConfidenceVariant = 0.8
	ConfidenceRegex   = 0.8

	// ConfidenceSemantic is reserved for the semantic fallback tier.
	ConfidenceSemantic = 0.6

	// DefaultInheritDecay is the multiplier applied when a heading inherits
	// its predecessor's category without matching any rule itself.
	DefaultInheritDecay = 0.7
)

// GlobalExclusionKeyword is the MatchedKeyword sentinel carried by excluded
// results.  Consumers key on this literal; the pattern that fired is logged,
// not emitted.
const GlobalExclusionKeyword = "global_exclusion"

// ─────────────────────────────────────────────────────────────────────────────
// Heading and MappingResult
// ─────────────────────────────────────────────────────────────────────────────

// Heading is one entry of a document's heading sequence in reading order.
// Depth starts at 1 for top-level chapter headings and grows downward.
type Heading struct {
	Title string `json:"title" yaml:"title"`
	Depth int    `json:"depth" yaml:"depth"`
}

// MappingResult is the classification verdict for a single heading.
type MappingResult struct {
	// OriginalTitle is the heading text exactly as supplied, before any
	// numbering-prefix normalization.
	OriginalTitle string `json:"original_title"`

	// Category is the assigned category id, or the unmapped/excluded sentinel.
	Category taxonomy.CategoryID `json:"chapter_id"`

	// CategoryName is the canonical display name of Category; empty for the
	// unmapped and excluded sentinels.
	CategoryName string `json:"chapter_name"`

	// Confidence grades how the assignment was reached; see the tier consts.
	Confidence float64 `json:"confidence"`

	// MatchType names the tier that produced the verdict.
	MatchType taxonomy.MatchType `json:"match_type"`

	// MatchedKeyword is the rule keyword or pattern that fired, the
	// GlobalExclusionKeyword sentinel for excluded results, or for inherited
	// results a note naming the anchor category.
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}

// IsMapped reports whether the result landed on a content category.
func (r MappingResult) IsMapped() bool {
	return r.Category.IsContent()
}

// IsExcluded reports whether the heading was dropped as non-content material.
func (r MappingResult) IsExcluded() bool {
	return r.Category == taxonomy.CategoryExcluded
}

//Personal.AI order the ending
