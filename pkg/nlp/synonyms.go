package nlp

import "strings"

// Expand maps a term to its canonical form. Unknown terms pass through lower-cased.
// Whole bigrams are looked up as-is: "ml engineer" is not a key, so it is returned unchanged.
func (v *Vocabulary) Expand(term string) string {
	t := strings.ToLower(term)
	if canon, ok := v.synonyms[t]; ok {
		return canon
	}
	return t
}

// Synonyms returns a copy of the abbreviation to canonical term table.
func (v *Vocabulary) Synonyms() map[string]string {
	out := make(map[string]string, len(v.synonyms))
	for k, c := range v.synonyms {
		out[k] = c
	}
	return out
}
