package nlp

// Bigrams joins every adjacent token pair with a single space, in token order.
// n tokens yield max(n-1, 0) bigrams.
func Bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return []string{}
	}
	out := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// GramCount is an n-gram and the number of times it occurred.
type GramCount struct {
	Gram string
	N    int
}

// Count tallies grams, returning them in first-encounter order.
func Count(grams []string) []GramCount {
	idx := make(map[string]int, len(grams))
	out := make([]GramCount, 0, len(grams))
	for _, g := range grams {
		if i, ok := idx[g]; ok {
			out[i].N++
			continue
		}
		idx[g] = len(out)
		out = append(out, GramCount{Gram: g, N: 1})
	}
	return out
}
