package chapter

import (
	"fmt"
	"regexp"

	apperrors "github.com/turtacn/ConstrDoc-Intelligence/pkg/errors"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Compiled rule corpus
// ─────────────────────────────────────────────────────────────────────────────

// compiledCategory is one category with its tagged rule entries partitioned
// into the match tiers and its patterns pre-compiled.
type compiledCategory struct {
	id       taxonomy.CategoryID
	name     string
	required bool
	exact    []string
	variants []string
	regexes  []*regexp.Regexp
	// regexSources keeps the original pattern text for MatchedKeyword.
	regexSources         []string
	exclusions           []string
	subSectionIndicators []string
}

// CompiledRules is the immutable, match-ready form of a RuleSource.  A value
// is safe for concurrent use by any number of classifiers once built.
type CompiledRules struct {
	categories []compiledCategory
	names      map[taxonomy.CategoryID]string
	global     []*regexp.Regexp
	globalSrc  []string
}

// Compile validates src and pre-compiles every pattern.  Compilation is
// fail-fast: the first invalid entry aborts with a configuration error, so a
// broken rule file can never half-load.
func Compile(src *RuleSource) (*CompiledRules, error) {
	if src == nil || len(src.Categories) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeRuleInvalid,
			"rule source declares no categories")
	}

	rules := &CompiledRules{
		names: make(map[taxonomy.CategoryID]string, len(src.Categories)),
	}

	for _, cat := range src.Categories {
		if !cat.ID.IsContent() {
			return nil, apperrors.New(apperrors.ErrCodeRuleInvalid,
				fmt.Sprintf("category id %q is not a content category", cat.ID))
		}
		if cat.Name == "" {
			return nil, apperrors.New(apperrors.ErrCodeRuleInvalid,
				fmt.Sprintf("category %s has no name", cat.ID))
		}
		if _, dup := rules.names[cat.ID]; dup {
			return nil, apperrors.New(apperrors.ErrCodeRuleCategoryDup,
				fmt.Sprintf("category id %s declared twice", cat.ID))
		}
		if len(cat.Rules) == 0 {
			return nil, apperrors.New(apperrors.ErrCodeRuleInvalid,
				fmt.Sprintf("category %s declares no matching rules", cat.ID))
		}

		cc := compiledCategory{
			id:                   cat.ID,
			name:                 cat.Name,
			required:             cat.Required,
			exclusions:           cat.Exclusions,
			subSectionIndicators: cat.SubSectionIndicators,
		}
		for _, entry := range cat.Rules {
			switch entry.Type {
			case RuleTypeExact:
				cc.exact = append(cc.exact, entry.Keywords...)
			case RuleTypeVariant:
				cc.variants = append(cc.variants, entry.Keywords...)
			case RuleTypeRegex:
				for _, pat := range entry.Patterns {
					re, err := regexp.Compile(pat)
					if err != nil {
						return nil, apperrors.Wrap(err, apperrors.ErrCodeRulePatternInvalid,
							fmt.Sprintf("category %s pattern %q", cat.ID, pat))
					}
					cc.regexes = append(cc.regexes, re)
					cc.regexSources = append(cc.regexSources, pat)
				}
			default:
				return nil, apperrors.New(apperrors.ErrCodeRuleTypeUnknown,
					fmt.Sprintf("category %s rule entry type %q", cat.ID, entry.Type))
			}
		}

		rules.categories = append(rules.categories, cc)
		rules.names[cat.ID] = cat.Name
	}

	globalPatterns := make([]string, 0,
		len(src.GlobalExclusions.CoverPatterns)+
			len(src.GlobalExclusions.AdminPatterns)+
			len(src.GlobalExclusions.SignaturePatterns))
	globalPatterns = append(globalPatterns, src.GlobalExclusions.CoverPatterns...)
	globalPatterns = append(globalPatterns, src.GlobalExclusions.AdminPatterns...)
	globalPatterns = append(globalPatterns, src.GlobalExclusions.SignaturePatterns...)

	for _, pat := range globalPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeRulePatternInvalid,
				fmt.Sprintf("global exclusion pattern %q", pat))
		}
		rules.global = append(rules.global, re)
		rules.globalSrc = append(rules.globalSrc, pat)
	}

	return rules, nil
}

// MustCompileDefault compiles the built-in rule corpus, panicking on failure.
// The built-in corpus is covered by tests, so a failure here is a programming
// error.
func MustCompileDefault() *CompiledRules {
	rules, err := Compile(DefaultRuleSource())
	if err != nil {
		panic(fmt.Sprintf("chapter: built-in rule corpus failed to compile: %v", err))
	}
	return rules
}

// CanonicalNames returns the id → display-name mapping of the corpus.
func (r *CompiledRules) CanonicalNames() map[taxonomy.CategoryID]string {
	out := make(map[taxonomy.CategoryID]string, len(r.names))
	for id, name := range r.names {
		out[id] = name
	}
	return out
}

// CategoryName returns the display name for id, or "" when the corpus does
// not declare it.
func (r *CompiledRules) CategoryName(id taxonomy.CategoryID) string {
	return r.names[id]
}

// CategoryCount returns the number of declared categories.
func (r *CompiledRules) CategoryCount() int {
	return len(r.categories)
}

// RequiredCategories returns, in declaration order, the ids the corpus marks
// as required chapters of a complete document.
func (r *CompiledRules) RequiredCategories() []taxonomy.CategoryID {
	var out []taxonomy.CategoryID
	for _, cat := range r.categories {
		if cat.required {
			out = append(out, cat.id)
		}
	}
	return out
}

// SubSectionIndicators returns the child-heading hint substrings declared for
// id, or nil when the corpus declares none.
func (r *CompiledRules) SubSectionIndicators(id taxonomy.CategoryID) []string {
	for _, cat := range r.categories {
		if cat.id == id {
			return cat.subSectionIndicators
		}
	}
	return nil
}

// globallyExcluded reports whether title hits any global exclusion pattern,
// returning the pattern text that fired.
func (r *CompiledRules) globallyExcluded(title string) (string, bool) {
	for i, re := range r.global {
		if re.MatchString(title) {
			return r.globalSrc[i], true
		}
	}
	return "", false
}

//Personal.AI order the ending
