package chapter

import (
	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/ConstrDoc-Intelligence/pkg/errors"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// ─────────────────────────────────────────────────────────────────────────────
// DocumentClassifier — heading-sequence classification with inheritance
// ─────────────────────────────────────────────────────────────────────────────

// initialContextDepth is the sentinel depth of the empty context.  Every real
// heading depth compares below it, so the first mapped heading always anchors.
const initialContextDepth = 99

// anchorContext tracks the most recent re-anchoring heading while walking a
// document's heading sequence.
type anchorContext struct {
	category   taxonomy.CategoryID
	name       string
	confidence float64
	depth      int
}

func emptyAnchor() anchorContext {
	return anchorContext{
		category: taxonomy.CategoryUnmapped,
		depth:    initialContextDepth,
	}
}

func (a anchorContext) mapped() bool { return a.category.IsContent() }

// DocumentClassifier classifies a whole document's heading sequence.  On top
// of per-title rule matching it applies depth-based inheritance: sub-headings
// under an anchored chapter heading belong to that chapter even when their
// own text matches nothing, or matches something else entirely.
type DocumentClassifier struct {
	titles *TitleClassifier
	decay  float64
	logger logging.Logger
}

// DocumentOption customises a DocumentClassifier.
type DocumentOption func(*DocumentClassifier)

// WithInheritDecay overrides the confidence multiplier applied when a heading
// at anchor depth inherits instead of re-anchoring.  Must be in (0, 1].
func WithInheritDecay(decay float64) DocumentOption {
	return func(d *DocumentClassifier) { d.decay = decay }
}

// WithDocumentLogger injects a logger; the default discards everything.
func WithDocumentLogger(l logging.Logger) DocumentOption {
	return func(d *DocumentClassifier) { d.logger = l }
}

// NewDocumentClassifier builds a document classifier over titles.
func NewDocumentClassifier(titles *TitleClassifier, opts ...DocumentOption) (*DocumentClassifier, error) {
	if titles == nil {
		return nil, apperrors.New(apperrors.ErrCodeClassifierNotReady,
			"document classifier requires a title classifier")
	}
	d := &DocumentClassifier{
		titles: titles,
		decay:  DefaultInheritDecay,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.decay <= 0 || d.decay > 1 {
		return nil, apperrors.New(apperrors.ErrCodeValidation,
			"inherit decay must be in (0, 1]")
	}
	return d, nil
}

// MapDocument classifies headings in reading order.  The returned slice is
// index-aligned with the input.
//
// Context rules, applied per heading after per-title matching:
//
//  1. An excluded heading is reported as such and leaves the context alone.
//  2. A direct match at or above the anchor depth re-anchors the context.
//  3. Any heading deeper than the anchor inherits the anchor's category at
//     the anchor's confidence, even when its own text matched a different
//     category; a deep heading cannot overrule its chapter.
//  4. A direct match deeper than an unmapped context anchors fresh.
//  5. Otherwise the heading inherits at decayed confidence when an anchor
//     exists, and stays unmapped when none does.
func (d *DocumentClassifier) MapDocument(headings []Heading) []MappingResult {
	results := make([]MappingResult, 0, len(headings))
	ctx := emptyAnchor()

	for _, h := range headings {
		r := d.titles.MapTitle(h.Title)

		switch {
		case r.IsExcluded():
			// Non-content material neither anchors nor inherits.

		case r.IsMapped() && h.Depth <= ctx.depth:
			ctx = anchorContext{
				category:   r.Category,
				name:       r.CategoryName,
				confidence: r.Confidence,
				depth:      h.Depth,
			}

		case h.Depth > ctx.depth && ctx.mapped():
			r = d.inherited(h.Title, ctx, ctx.confidence)

		case r.IsMapped():
			ctx = anchorContext{
				category:   r.Category,
				name:       r.CategoryName,
				confidence: r.Confidence,
				depth:      h.Depth,
			}

		case ctx.mapped():
			r = d.inherited(h.Title, ctx, ctx.confidence*d.decay)

		default:
			// Unmapped with no anchor; the per-title verdict stands.
		}

		results = append(results, r)
	}

	return results
}

func (d *DocumentClassifier) inherited(title string, ctx anchorContext, confidence float64) MappingResult {
	return MappingResult{
		OriginalTitle:  title,
		Category:       ctx.category,
		CategoryName:   ctx.name,
		Confidence:     confidence,
		MatchType:      taxonomy.MatchInherited,
		MatchedKeyword: "继承自 " + ctx.name,
	}
}

//Personal.AI order the ending
