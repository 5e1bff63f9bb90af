// Package nlp turns free-form resume or profile text into ranked search terms
// and a detected city.
//
// Pipeline: Normalize → Tokenize → unigrams/bigrams → Expand → Score → Rank.
// Everything here is a pure function of the input and an immutable Vocabulary,
// so an Extractor can be shared between goroutines.
package nlp

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultMaxKeywords   = 10
	DefaultQueryKeywords = 2

	// Texts shorter than this (in characters) produce no keywords.
	minTextLen = 3
)

// Result is what an extraction produces for one text.
type Result struct {
	Keywords []string `json:"keywords"`
	Location string   `json:"location"`
}

// Extractor extracts keywords and a location using a fixed Vocabulary.
type Extractor struct {
	vocab       *Vocabulary
	maxKeywords int
}

type Option func(*Extractor)

// WithMaxKeywords caps the number of keywords ExtractKeywords returns.
// Non-positive values are ignored.
func WithMaxKeywords(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxKeywords = n
		}
	}
}

// NewExtractor builds an Extractor. A nil vocabulary means DefaultVocabulary().
func NewExtractor(vocab *Vocabulary, opts ...Option) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	e := &Extractor{vocab: vocab, maxKeywords: DefaultMaxKeywords}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Extractor) Vocabulary() *Vocabulary { return e.vocab }

func (e *Extractor) MaxKeywords() int { return e.maxKeywords }

// ExtractKeywords returns up to MaxKeywords terms, best first.
func (e *Extractor) ExtractKeywords(text string) []string {
	return e.TopKeywords(text, e.maxKeywords)
}

// TopKeywords returns up to limit terms, best first. Degenerate input yields an empty slice.
func (e *Extractor) TopKeywords(text string, limit int) []string {
	return Rank(e.scores(text), limit)
}

// Explain is TopKeywords with the score of each term.
func (e *Extractor) Explain(text string, limit int) []ScoredTerm {
	return RankScored(e.scores(text), limit)
}

// Location returns the detected city or "".
func (e *Extractor) Location(text string) string {
	return e.vocab.DetectLocation(text)
}

// Extract runs keyword extraction and location detection.
func (e *Extractor) Extract(text string) Result {
	return Result{
		Keywords: e.ExtractKeywords(text),
		Location: e.Location(text),
	}
}

// scores returns nil when text is too short or has no usable tokens.
func (e *Extractor) scores(text string) *Scores {
	if utf8.RuneCountInString(text) < minTextLen {
		return nil
	}
	normalized := Normalize(text)
	tokens := e.vocab.Tokenize(normalized)
	if len(tokens) == 0 {
		return nil
	}
	return e.vocab.Score(tokens, normalized)
}

// QueryTerms joins the first n keywords with spaces to form a search query.
func QueryTerms(keywords []string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return strings.Join(keywords, " ")
}
