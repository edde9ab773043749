package chapter

import (
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/turtacn/ConstrDoc-Intelligence/pkg/errors"
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Rule source — the declarative form of the rule corpus
// ─────────────────────────────────────────────────────────────────────────────

// Rule entry types.  Compile rejects anything else.
const (
	RuleTypeExact   = "exact"
	RuleTypeVariant = "variant"
	RuleTypeRegex   = "regex"
)

// RuleEntry is one tagged entry of a category's ordered rule list.  Exact and
// variant entries carry keywords; regex entries carry patterns.
type RuleEntry struct {
	Type     string   `yaml:"type"`
	Keywords []string `yaml:"keywords,omitempty"`
	Patterns []string `yaml:"patterns,omitempty"`
}

// CategorySource declares the matching rules of one content category.
// Categories are kept as an ordered list, not a map: when a title satisfies
// rules of more than one category within the same tier, the first declared
// category wins, and that order must survive parsing.
type CategorySource struct {
	// ID is the category id ("Ch1" … "Ch10").
	ID taxonomy.CategoryID `yaml:"id"`

	// Name is the canonical display name, e.g. "六、施工方法及工艺要求".
	Name string `yaml:"name"`

	// Required marks the chapters every complete document must carry.
	Required bool `yaml:"required"`

	// Rules is the ordered tagged rule list.  Entries of the same type keep
	// their declaration order within the match tier they feed.
	Rules []RuleEntry `yaml:"rules"`

	// Exclusions suppress this category only: a title hitting one of these
	// substrings never maps here but remains eligible elsewhere.
	Exclusions []string `yaml:"exclusions"`

	// SubSectionIndicators are hint substrings marking typical child headings
	// of this chapter.
	SubSectionIndicators []string `yaml:"sub_section_indicators"`
}

// GlobalExclusionSource declares the patterns that mark a heading as
// non-content material before any category is considered.
type GlobalExclusionSource struct {
	// CoverPatterns catch document cover lines such as company names and
	// project designations.
	CoverPatterns []string `yaml:"cover_patterns"`

	// AdminPatterns catch administrative forms: tables of contents, approval
	// and sign-off sheets.
	AdminPatterns []string `yaml:"admin_patterns"`

	// SignaturePatterns catch fill-in signature lines.
	SignaturePatterns []string `yaml:"signature_patterns"`
}

// RuleSource is the full declarative rule corpus.  It is what a YAML rule
// file deserializes into, and what DefaultRuleSource returns.
type RuleSource struct {
	// Categories in declaration order; the order is a tie-break contract.
	Categories []CategorySource `yaml:"categories"`

	// GlobalExclusions apply before any category matching.
	GlobalExclusions GlobalExclusionSource `yaml:"global_exclusions"`
}

// ParseRuleSource deserializes a YAML rule document.
func ParseRuleSource(data []byte) (*RuleSource, error) {
	src := &RuleSource{}
	if err := yaml.Unmarshal(data, src); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeRuleSourceMalformed,
			"failed to parse rule source YAML")
	}
	return src, nil
}

// LoadRuleFile reads and parses a YAML rule file from disk.
func LoadRuleFile(path string) (*RuleSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeRuleSourceUnreadable,
			"failed to read rule file "+path)
	}
	return ParseRuleSource(data)
}

//Personal.AI order the ending
