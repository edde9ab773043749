package fragment

import (
	"unicode/utf8"

	"github.com/go-ego/gse"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Tokenization
// ─────────────────────────────────────────────────────────────────────────────

// minTokenRunes drops single-character tokens: particles and punctuation
// dominate them and they carry no discriminating power for similarity.
const minTokenRunes = 2

// TokenSet is the deduplicated token bag of one fragment's content.
type TokenSet map[string]struct{}

// Tokenizer turns fragment content into a TokenSet.
type Tokenizer interface {
	Tokenize(text string) TokenSet
	Name() string
}

// ─────────────────────────────────────────────────────────────────────────────
// Dictionary word segmentation
// ─────────────────────────────────────────────────────────────────────────────

// SegmenterTokenizer segments Chinese text with a dictionary-driven word
// segmenter; this is the preferred backend.
type SegmenterTokenizer struct {
	seg gse.Segmenter
}

// NewSegmenterTokenizer loads the embedded dictionary.  Loading is the only
// fallible step; the returned tokenizer is safe for concurrent use.
func NewSegmenterTokenizer() (*SegmenterTokenizer, error) {
	t := &SegmenterTokenizer{}
	if err := t.seg.LoadDictEmbed(); err != nil {
		return nil, err
	}
	return t, nil
}

// Tokenize segments text in search mode and keeps tokens of at least
// minTokenRunes runes.
func (t *SegmenterTokenizer) Tokenize(text string) TokenSet {
	tokens := make(TokenSet)
	for _, tok := range t.seg.Cut(text, true) {
		if utf8.RuneCountInString(tok) >= minTokenRunes {
			tokens[tok] = struct{}{}
		}
	}
	return tokens
}

// Name identifies the backend in logs and reports.
func (t *SegmenterTokenizer) Name() string { return "segmenter" }

// ─────────────────────────────────────────────────────────────────────────────
// Character bigram fallback
// ─────────────────────────────────────────────────────────────────────────────

// BigramTokenizer emits overlapping rune bigrams.  It needs no dictionary and
// serves as the fallback when the segmenter cannot load.
type BigramTokenizer struct{}

// NewBigramTokenizer constructs the fallback tokenizer.
func NewBigramTokenizer() *BigramTokenizer { return &BigramTokenizer{} }

// Tokenize emits every adjacent rune pair of text.
func (t *BigramTokenizer) Tokenize(text string) TokenSet {
	tokens := make(TokenSet)
	runes := []rune(text)
	for i := 0; i+1 < len(runes); i++ {
		tokens[string(runes[i:i+2])] = struct{}{}
	}
	return tokens
}

// Name identifies the backend in logs and reports.
func (t *BigramTokenizer) Name() string { return "bigram" }

// NewDefaultTokenizer returns the segmenter backend, falling back to rune
// bigrams when the dictionary fails to load.
func NewDefaultTokenizer(logger logging.Logger) Tokenizer {
	if logger == nil {
		logger = logging.Nop()
	}
	seg, err := NewSegmenterTokenizer()
	if err != nil {
		logger.Warn("segmenter dictionary failed to load, falling back to bigrams",
			logging.Err(err))
		return NewBigramTokenizer()
	}
	return seg
}

//Personal.AI order the ending
