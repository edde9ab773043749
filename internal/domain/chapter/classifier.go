package chapter

import (
	"strings"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/ConstrDoc-Intelligence/pkg/errors"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// ─────────────────────────────────────────────────────────────────────────────
// TitleClassifier — tiered single-title classification
// ─────────────────────────────────────────────────────────────────────────────

// TitleClassifier maps a single heading title onto the category taxonomy by
// running the match tiers in fixed order: global exclusion, exact keywords,
// variant keywords, regex patterns.  Each tier runs across every category
// before the next tier is consulted, so a weak match in an early-declared
// category never shadows a strong match in a later one.
type TitleClassifier struct {
	rules  *CompiledRules
	logger logging.Logger
}

// ClassifierOption customises a TitleClassifier.
type ClassifierOption func(*TitleClassifier)

// WithClassifierLogger injects a logger; the default discards everything.
func WithClassifierLogger(l logging.Logger) ClassifierOption {
	return func(c *TitleClassifier) { c.logger = l }
}

// NewTitleClassifier builds a classifier over a compiled rule corpus.
func NewTitleClassifier(rules *CompiledRules, opts ...ClassifierOption) (*TitleClassifier, error) {
	if rules == nil || len(rules.categories) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeClassifierNotReady,
			"classifier requires a compiled rule corpus")
	}
	c := &TitleClassifier{
		rules:  rules,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Rules exposes the compiled corpus backing this classifier.
func (c *TitleClassifier) Rules() *CompiledRules { return c.rules }

// MapTitle classifies one heading title in isolation.  Document-level context
// (inheritance across the heading sequence) is the DocumentClassifier's job.
func (c *TitleClassifier) MapTitle(title string) MappingResult {
	raw := strings.TrimSpace(title)

	// Tier 0: global exclusion runs against the raw title, before numbering
	// is stripped, so that cover lines and sign-off forms never reach the
	// category rules.
	if pat, hit := c.rules.globallyExcluded(raw); hit {
		c.logger.Debug("globally excluded",
			logging.String("title", raw), logging.String("pattern", pat))
		return MappingResult{
			OriginalTitle:  title,
			Category:       taxonomy.CategoryExcluded,
			Confidence:     ConfidenceExact,
			MatchType:      taxonomy.MatchExcluded,
			MatchedKeyword: GlobalExclusionKeyword,
		}
	}

	cleaned := NormalizeTitle(raw)

	// Tier 1: exact keywords.  Keywords match the normalized core or the raw
	// title, so a keyword spanning a numbering prefix still fires.
	for _, cat := range c.rules.categories {
		if c.hitsExclusion(cat, cleaned, raw) {
			continue
		}
		for _, kw := range cat.exact {
			if strings.Contains(cleaned, kw) || strings.Contains(raw, kw) {
				return c.mapped(title, cat, ConfidenceExact, taxonomy.MatchExact, kw)
			}
		}
	}

	// Tier 2: variant keywords.
	for _, cat := range c.rules.categories {
		if c.hitsExclusion(cat, cleaned, raw) {
			continue
		}
		for _, kw := range cat.variants {
			if strings.Contains(cleaned, kw) || strings.Contains(raw, kw) {
				return c.mapped(title, cat, ConfidenceVariant, taxonomy.MatchVariant, kw)
			}
		}
	}

	// Tier 3: regex patterns run against the raw title, so anchored patterns
	// may address the numbering the normalizer strips.
	for _, cat := range c.rules.categories {
		if c.hitsExclusion(cat, cleaned, raw) {
			continue
		}
		for i, re := range cat.regexes {
			if re.MatchString(raw) {
				return c.mapped(title, cat, ConfidenceRegex, taxonomy.MatchRegex, cat.regexSources[i])
			}
		}
	}

	c.logger.Debug("no rule matched", logging.String("title", cleaned))

	return MappingResult{
		OriginalTitle: title,
		Category:      taxonomy.CategoryUnmapped,
		Confidence:    0,
		MatchType:     taxonomy.MatchUnmapped,
	}
}

// SemanticFallback is the reserved slot for embedding-based classification of
// titles no rule matched.  The tier is declared but not yet available.
func (c *TitleClassifier) SemanticFallback(title string) (MappingResult, error) {
	return MappingResult{}, apperrors.New(apperrors.ErrCodeSemanticTierUnavailable,
		"semantic fallback tier is not implemented")
}

// hitsExclusion reports whether the title hits one of the category's own
// exclusion substrings.  Both the cleaned and the raw form are checked, so an
// exclusion keyword hidden inside a numbering prefix still suppresses the
// category.
func (c *TitleClassifier) hitsExclusion(cat compiledCategory, cleaned, raw string) bool {
	for _, ex := range cat.exclusions {
		if strings.Contains(cleaned, ex) || strings.Contains(raw, ex) {
			return true
		}
	}
	return false
}

func (c *TitleClassifier) mapped(title string, cat compiledCategory, confidence float64, mt taxonomy.MatchType, keyword string) MappingResult {
	return MappingResult{
		OriginalTitle:  title,
		Category:       cat.id,
		CategoryName:   cat.name,
		Confidence:     confidence,
		MatchType:      mt,
		MatchedKeyword: keyword,
	}
}

//Personal.AI order the ending
