package nlp

import "strings"

// DetectLocation returns the first known city, in vocabulary order, that occurs in text.
// It returns "" when none does. There is no longest-match rule: with the default
// vocabulary "new delhi" yields "delhi" because "delhi" is listed first.
func (v *Vocabulary) DetectLocation(text string) string {
	lower := strings.ToLower(text)
	for _, city := range v.cities {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return ""
}
