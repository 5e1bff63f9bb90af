package nlp

import (
	"fmt"
	"strings"
)

// MatchMode selects how curated phrases are found in normalized text.
type MatchMode int

const (
	// MatchSubstring is plain containment in the space-padded text. A phrase may
	// match inside a longer word ("intern" in "international").
	MatchSubstring MatchMode = iota
	// MatchWholeWords requires the phrase to be delimited by spaces on both sides.
	MatchWholeWords
)

func (m MatchMode) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchWholeWords:
		return "word"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode accepts "substring" (or empty) and "word".
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return MatchSubstring, nil
	case "word", "words":
		return MatchWholeWords, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q", s)
	}
}

// pad surrounds normalized text with single spaces.
func pad(normalized string) string {
	return " " + normalized + " "
}

// contains reports whether phrase occurs in padded text under mode m.
func (m MatchMode) contains(padded, phrase string) bool {
	if phrase == "" {
		return false
	}
	if m == MatchWholeWords {
		return ContainsPhrase(padded, phrase)
	}
	return strings.Contains(padded, phrase)
}

// ContainsPhrase checks the phrase occurs as whole words.
// "rest api" is found in " ... rest api ... " but not in " ... rest apis ... ".
// Whitespace runs in text are collapsed; phrase words must be single-space separated.
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	hay := " " + strings.Join(strings.Fields(text), " ") + " "
	return strings.Contains(hay, " "+phrase+" ")
}
