package nlp

import "sort"

// ScoredTerm is a canonical term with its accumulated score.
type ScoredTerm struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// RankScored orders terms by score, highest first, and keeps at most limit entries.
// Equal scores keep first-accumulated order.
func RankScored(scores *Scores, limit int) []ScoredTerm {
	if scores == nil || limit <= 0 {
		return []ScoredTerm{}
	}
	items := make([]ScoredTerm, 0, scores.Len())
	for _, t := range scores.order {
		items = append(items, ScoredTerm{Term: t, Score: scores.values[t]})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Rank is RankScored without the scores.
func Rank(scores *Scores, limit int) []string {
	ranked := RankScored(scores, limit)
	out := make([]string, len(ranked))
	for i, st := range ranked {
		out[i] = st.Term
	}
	return out
}
