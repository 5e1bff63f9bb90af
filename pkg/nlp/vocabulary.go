package nlp

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.yaml.in/yaml/v4"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// ErrInvalidVocabulary is returned when vocabulary data fails validation.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// Vocabulary is the curated, read-only data the extractor works from:
// technical skills, role titles, synonyms, stopwords and known cities.
// A Vocabulary is never mutated after construction and is safe for concurrent use.
type Vocabulary struct {
	version    int
	techSkills []string
	roleTitles []string
	synonyms   map[string]string
	stopwords  map[string]struct{}
	cities     []string
	match      MatchMode
}

type vocabularyFile struct {
	Version    int               `yaml:"version"`
	TechSkills []string          `yaml:"tech_skills"`
	RoleTitles []string          `yaml:"role_titles"`
	Synonyms   map[string]string `yaml:"synonyms"`
	Cities     []string          `yaml:"cities"`
	Stopwords  []string          `yaml:"stopwords"`
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// DefaultVocabulary returns the process-wide vocabulary built from the embedded data.
func DefaultVocabulary() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := LoadVocabulary(defaultVocabularyYAML)
		if err != nil {
			panic(fmt.Sprintf("nlp: embedded vocabulary: %v", err))
		}
		defaultVocab = v
	})
	return defaultVocab
}

// LoadVocabularyFile reads a YAML vocabulary from disk.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return LoadVocabulary(data)
}

// LoadVocabulary decodes and validates YAML vocabulary data.
func LoadVocabulary(data []byte) (*Vocabulary, error) {
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	v := &Vocabulary{
		version:    f.Version,
		techSkills: append([]string(nil), f.TechSkills...),
		roleTitles: append([]string(nil), f.RoleTitles...),
		synonyms:   make(map[string]string, len(f.Synonyms)),
		stopwords:  make(map[string]struct{}, len(f.Stopwords)),
		cities:     append([]string(nil), f.Cities...),
		match:      MatchSubstring,
	}
	for k, val := range f.Synonyms {
		v.synonyms[k] = val
	}
	for _, w := range f.Stopwords {
		v.stopwords[w] = struct{}{}
	}
	return v, nil
}

func (f vocabularyFile) validate() error {
	check := func(kind string, items []string) error {
		for i, s := range items {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%w: empty %s entry at index %d", ErrInvalidVocabulary, kind, i)
			}
			if s != strings.ToLower(s) {
				return fmt.Errorf("%w: %s entry %q is not lower-case", ErrInvalidVocabulary, kind, s)
			}
		}
		return nil
	}
	if err := check("tech_skills", f.TechSkills); err != nil {
		return err
	}
	if err := check("role_titles", f.RoleTitles); err != nil {
		return err
	}
	if err := check("cities", f.Cities); err != nil {
		return err
	}
	if err := check("stopwords", f.Stopwords); err != nil {
		return err
	}
	skills := make(map[string]struct{}, len(f.TechSkills))
	for _, s := range f.TechSkills {
		skills[s] = struct{}{}
	}
	for _, r := range f.RoleTitles {
		if _, ok := skills[r]; ok {
			return fmt.Errorf("%w: %q is both a tech skill and a role title", ErrInvalidVocabulary, r)
		}
	}
	for k, v := range f.Synonyms {
		if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: empty synonym %q -> %q", ErrInvalidVocabulary, k, v)
		}
		if k != strings.ToLower(k) || v != strings.ToLower(v) {
			return fmt.Errorf("%w: synonym %q -> %q is not lower-case", ErrInvalidVocabulary, k, v)
		}
	}
	return nil
}

// WithMatchMode returns a copy of the vocabulary that matches curated phrases
// using the given mode. The receiver is left unchanged.
func (v *Vocabulary) WithMatchMode(m MatchMode) *Vocabulary {
	cp := *v
	cp.match = m
	return &cp
}

// Version of the loaded vocabulary data.
func (v *Vocabulary) Version() int { return v.version }

// MatchMode reports how curated phrases are matched against text.
func (v *Vocabulary) MatchMode() MatchMode { return v.match }

func (v *Vocabulary) TechSkills() []string { return append([]string(nil), v.techSkills...) }

func (v *Vocabulary) RoleTitles() []string { return append([]string(nil), v.roleTitles...) }

func (v *Vocabulary) Cities() []string { return append([]string(nil), v.cities...) }

// IsStopword reports whether w is in the stopword set.
func (v *Vocabulary) IsStopword(w string) bool {
	_, ok := v.stopwords[w]
	return ok
}

// IsSynonym reports whether w is an abbreviation with a canonical form.
func (v *Vocabulary) IsSynonym(w string) bool {
	_, ok := v.synonyms[w]
	return ok
}
