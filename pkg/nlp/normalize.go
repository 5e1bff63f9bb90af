package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9\s]`)

// minTokenLen is the shortest token kept by Tokenize (synonym keys excepted).
const minTokenLen = 3

// Normalize lower-cases s and replaces every character outside [a-z0-9\s] with a space.
// The substitution runs over the whole string, so punctuation inside a word splits it
// ("node.js" becomes "node js"). Whitespace runs are kept as-is.
func Normalize(s string) string {
	return nonWord.ReplaceAllString(strings.ToLower(s), " ")
}

// Tokenize splits normalized text on whitespace and drops stopwords and short tokens.
// Tokens that are synonym keys survive the length filter so abbreviations such as
// "ml" can still be expanded.
func (v *Vocabulary) Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	out := make([]string, 0, len(fields))
	for _, t := range fields {
		if v.IsStopword(t) {
			continue
		}
		if len(t) < minTokenLen && !v.IsSynonym(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
