package fragment

// ─────────────────────────────────────────────────────────────────────────────
// Similarity thresholds
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultDedupThreshold is the Jaccard similarity a pair must exceed —
	// strictly — to count as near-duplicates.  A pair at exactly the
	// threshold is kept.
	DefaultDedupThreshold = 0.8

	// HighSimilarity marks pairs close enough to flag in reports even when
	// the configured threshold is stricter.
	HighSimilarity = 0.9

	// IdenticalSimilarity is the score of token-identical content.
	IdenticalSimilarity = 1.0
)

// Jaccard computes set-intersection over set-union of two token sets.
//
// Edge cases follow set semantics: two empty sets are identical (1.0); an
// empty set shares nothing with a non-empty one (0.0).
func Jaccard(a, b TokenSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

//Personal.AI order the ending
