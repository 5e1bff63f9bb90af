package nlp

const (
	// Per-occurrence weights.
	UnigramWeight = 1.0
	BigramWeight  = 2.5

	// Flat bonuses for curated phrases found in the text.
	SkillBonus = 8.0
	RoleBonus  = 10.0
)

// Scores accumulates a score per canonical term and remembers the order in
// which terms were first added. That order breaks ties in Rank.
type Scores struct {
	order  []string
	values map[string]float64
}

func NewScores() *Scores {
	return &Scores{values: make(map[string]float64)}
}

// Add adds w to term's score, creating the entry when absent.
func (s *Scores) Add(term string, w float64) {
	if _, ok := s.values[term]; !ok {
		s.order = append(s.order, term)
	}
	s.values[term] += w
}

// Get returns the accumulated score for term.
func (s *Scores) Get(term string) (float64, bool) {
	v, ok := s.values[term]
	return v, ok
}

func (s *Scores) Len() int { return len(s.order) }

// Terms returns terms in first-accumulated order.
func (s *Scores) Terms() []string { return append([]string(nil), s.order...) }

// Score computes the additive score of every canonical term:
// unigram frequency, bigram frequency at BigramWeight, and flat bonuses for
// technical skills and role titles present in the padded normalized text.
func (v *Vocabulary) Score(tokens []string, normalized string) *Scores {
	scores := NewScores()

	for _, gc := range Count(tokens) {
		scores.Add(v.Expand(gc.Gram), float64(gc.N)*UnigramWeight)
	}
	for _, gc := range Count(Bigrams(tokens)) {
		scores.Add(v.Expand(gc.Gram), float64(gc.N)*BigramWeight)
	}

	padded := pad(normalized)
	for _, skill := range v.techSkills {
		if v.match.contains(padded, skill) {
			scores.Add(skill, SkillBonus)
		}
	}
	for _, role := range v.roleTitles {
		if v.match.contains(padded, role) {
			scores.Add(role, RoleBonus)
		}
	}
	return scores
}
