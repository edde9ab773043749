// Package taxonomy defines the closed category id space of the standard
// ten-chapter construction-method document structure, together with the match
// tiers and fragment density levels shared by the classification and dedup
// domains.
package taxonomy

// CategoryID identifies one of the ten canonical structural chapters, or one
// of the two sentinels.  The id space is closed: no other values are valid.
type CategoryID string

const (
	CategoryCh1  CategoryID = "Ch1"
	CategoryCh2  CategoryID = "Ch2"
	CategoryCh3  CategoryID = "Ch3"
	CategoryCh4  CategoryID = "Ch4"
	CategoryCh5  CategoryID = "Ch5"
	CategoryCh6  CategoryID = "Ch6"
	CategoryCh7  CategoryID = "Ch7"
	CategoryCh8  CategoryID = "Ch8"
	CategoryCh9  CategoryID = "Ch9"
	CategoryCh10 CategoryID = "Ch10"

	// CategoryUnmapped marks a heading no rule matched.
	CategoryUnmapped CategoryID = "unmapped"
	// CategoryExcluded marks non-content administrative material (cover
	// pages, sign-off forms, tables of contents).
	CategoryExcluded CategoryID = "excluded"
)

// ContentCategoryIDs returns the ten content categories in canonical order.
func ContentCategoryIDs() []CategoryID {
	return []CategoryID{
		CategoryCh1, CategoryCh2, CategoryCh3, CategoryCh4, CategoryCh5,
		CategoryCh6, CategoryCh7, CategoryCh8, CategoryCh9, CategoryCh10,
	}
}

// IsContent reports whether the id is one of the ten content categories.
func (c CategoryID) IsContent() bool {
	switch c {
	case CategoryCh1, CategoryCh2, CategoryCh3, CategoryCh4, CategoryCh5,
		CategoryCh6, CategoryCh7, CategoryCh8, CategoryCh9, CategoryCh10:
		return true
	default:
		return false
	}
}

// IsValid reports whether the id belongs to the closed id space.
func (c CategoryID) IsValid() bool {
	return c.IsContent() || c == CategoryUnmapped || c == CategoryExcluded
}

// String returns the string representation of the category id.
func (c CategoryID) String() string {
	return string(c)
}

// MatchType names the strategy that produced a classification.
type MatchType string

const (
	MatchExact     MatchType = "exact"
	MatchVariant   MatchType = "variant"
	MatchRegex     MatchType = "regex"
	MatchInherited MatchType = "inherited"
	MatchExcluded  MatchType = "excluded"
	MatchUnmapped  MatchType = "unmapped"

	// MatchSemantic is reserved for the future semantic fallback tier.  No
	// classifier emits it today; the tier reports itself unimplemented.
	MatchSemantic MatchType = "semantic"
)

// IsValid reports whether the match type is one of the defined tiers.
func (m MatchType) IsValid() bool {
	switch m {
	case MatchExact, MatchVariant, MatchRegex, MatchInherited,
		MatchExcluded, MatchUnmapped, MatchSemantic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the match type.
func (m MatchType) String() string {
	return string(m)
}

// DensityLevel grades a fragment's knowledge density as scored by the
// upstream evaluation stage.
type DensityLevel string

const (
	DensityHigh   DensityLevel = "high"
	DensityMedium DensityLevel = "medium"
	DensityLow    DensityLevel = "low"
)

// Indexable reports whether fragments of this density enter the knowledge
// base; only indexable fragments participate in deduplication.
func (d DensityLevel) Indexable() bool {
	return d == DensityHigh || d == DensityMedium
}

// IsValid reports whether the density level is defined.
func (d DensityLevel) IsValid() bool {
	switch d {
	case DensityHigh, DensityMedium, DensityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the density level.
func (d DensityLevel) String() string {
	return string(d)
}

//Personal.AI order the ending
