package fragment

import (
	"fmt"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/ConstrDoc-Intelligence/pkg/errors"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Deduplicator
// ─────────────────────────────────────────────────────────────────────────────

// Deduplicator removes near-duplicate fragments from a batch.  Comparison is
// strictly category-scoped: fragments of different categories are never
// compared, whatever their content.
type Deduplicator struct {
	threshold float64
	tokenizer Tokenizer
	logger    logging.Logger
}

// DedupOption customises a Deduplicator.
type DedupOption func(*Deduplicator)

// WithThreshold overrides the similarity threshold.  Must be in (0, 1].
func WithThreshold(threshold float64) DedupOption {
	return func(d *Deduplicator) { d.threshold = threshold }
}

// WithDedupLogger injects a logger; the default discards everything.
func WithDedupLogger(l logging.Logger) DedupOption {
	return func(d *Deduplicator) { d.logger = l }
}

// NewDeduplicator builds a Deduplicator over tokenizer.
func NewDeduplicator(tokenizer Tokenizer, opts ...DedupOption) (*Deduplicator, error) {
	if tokenizer == nil {
		return nil, apperrors.New(apperrors.ErrCodeTokenizerUnavailable,
			"deduplicator requires a tokenizer")
	}
	d := &Deduplicator{
		threshold: DefaultDedupThreshold,
		tokenizer: tokenizer,
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.threshold <= 0 || d.threshold > 1 {
		return nil, apperrors.New(apperrors.ErrCodeDedupThresholdInvalid,
			fmt.Sprintf("threshold must be in (0, 1], got %v", d.threshold))
	}
	return d, nil
}

// Threshold returns the configured similarity threshold.
func (d *Deduplicator) Threshold() float64 { return d.threshold }

// RemovedFragment records one removal and the surviving fragment it
// duplicated.
type RemovedFragment struct {
	Fragment    KnowledgeFragment `json:"fragment"`
	DuplicateOf KnowledgeFragment `json:"duplicate_of"`
	Similarity  float64           `json:"similarity"`
}

// DedupResult is the outcome of one Run.
type DedupResult struct {
	// Kept holds the surviving indexable fragments in input order.
	Kept []KnowledgeFragment `json:"kept"`

	// Removed holds the fragments dropped as near-duplicates.
	Removed []RemovedFragment `json:"removed"`

	// LowDensity holds the fragments that never entered comparison because
	// their density bars them from the knowledge base.
	LowDensity []KnowledgeFragment `json:"low_density,omitempty"`

	// Comparisons counts the similarity computations performed per category.
	Comparisons map[taxonomy.CategoryID]int `json:"comparisons,omitempty"`
}

// RemovedByCategory tallies removals per category.
func (r DedupResult) RemovedByCategory() map[taxonomy.CategoryID]int {
	out := make(map[taxonomy.CategoryID]int)
	for _, rm := range r.Removed {
		out[rm.Fragment.Category]++
	}
	return out
}

// Run deduplicates a batch.  Within each category group every surviving pair
// is compared once; a pair strictly above the threshold loses its lower
// quality member.  On a quality tie the fragment from the higher-numbered
// source document is removed, keeping the earlier-ingested copy.
func (d *Deduplicator) Run(fragments []KnowledgeFragment) DedupResult {
	result := DedupResult{
		Comparisons: make(map[taxonomy.CategoryID]int),
	}

	indexable := make([]KnowledgeFragment, 0, len(fragments))
	for _, f := range fragments {
		if f.Indexable() {
			indexable = append(indexable, f)
		} else {
			result.LowDensity = append(result.LowDensity, f)
		}
	}

	// Group indices by category, preserving input order within groups.
	groups := make(map[taxonomy.CategoryID][]int)
	for i, f := range indexable {
		groups[f.Category] = append(groups[f.Category], i)
	}

	removed := make(map[int]RemovedFragment)
	for category, group := range groups {
		if len(group) < 2 {
			continue
		}
		result.Comparisons[category] += d.dedupGroup(indexable, group, removed)
	}

	for i, f := range indexable {
		if rm, gone := removed[i]; gone {
			result.Removed = append(result.Removed, rm)
		} else {
			result.Kept = append(result.Kept, f)
		}
	}

	d.logger.Info("dedup run finished",
		logging.Int("input", len(fragments)),
		logging.Int("kept", len(result.Kept)),
		logging.Int("removed", len(result.Removed)),
		logging.Int("low_density", len(result.LowDensity)))

	return result
}

// dedupGroup compares every surviving pair of one category group and records
// losers in removed.  It returns the number of comparisons performed.
func (d *Deduplicator) dedupGroup(fragments []KnowledgeFragment, group []int, removed map[int]RemovedFragment) int {
	tokens := make(map[int]TokenSet, len(group))
	for _, idx := range group {
		tokens[idx] = d.tokenizer.Tokenize(fragments[idx].Content)
	}

	comparisons := 0
	for a := 0; a < len(group); a++ {
		i := group[a]
		if _, gone := removed[i]; gone {
			continue
		}
		for b := a + 1; b < len(group); b++ {
			j := group[b]
			if _, gone := removed[j]; gone {
				continue
			}
			comparisons++
			sim := Jaccard(tokens[i], tokens[j])
			if sim <= d.threshold {
				continue
			}

			loser, winner := pickLoser(i, j, fragments)
			removed[loser] = RemovedFragment{
				Fragment:    fragments[loser],
				DuplicateOf: fragments[winner],
				Similarity:  sim,
			}
			d.logger.Debug("near-duplicate removed",
				logging.String("category", fragments[loser].Category.String()),
				logging.String("removed", fragments[loser].ID.String()),
				logging.String("kept", fragments[winner].ID.String()),
				logging.Float64("similarity", sim))

			if loser == i {
				// The left fragment lost; stop comparing it.
				break
			}
		}
	}
	return comparisons
}

// pickLoser decides which of a near-duplicate pair is removed: the lower
// quality rating loses; on a tie the higher-numbered source document loses.
func pickLoser(i, j int, fragments []KnowledgeFragment) (loser, winner int) {
	fi, fj := fragments[i], fragments[j]
	switch {
	case fi.QualityRating < fj.QualityRating:
		return i, j
	case fj.QualityRating < fi.QualityRating:
		return j, i
	case fi.SourceDoc <= fj.SourceDoc:
		return j, i
	default:
		return i, j
	}
}

//Personal.AI order the ending
