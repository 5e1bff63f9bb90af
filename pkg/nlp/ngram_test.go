package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigrams_Count(t *testing.T) {
	tokens := []string{"senior", "python", "developer", "remote", "team"}
	for n := 0; n <= len(tokens); n++ {
		got := Bigrams(tokens[:n])
		want := n - 1
		if want < 0 {
			want = 0
		}
		require.Len(t, got, want, "n=%d", n)
		for i, b := range got {
			assert.Equal(t, tokens[i]+" "+tokens[i+1], b)
		}
	}
}

func TestBigrams_Nil(t *testing.T) {
	got := Bigrams(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCount_FirstEncounterOrder(t *testing.T) {
	got := Count([]string{"go", "python", "go", "sql", "python", "go"})
	assert.Equal(t, []GramCount{
		{Gram: "go", N: 3},
		{Gram: "python", N: 2},
		{Gram: "sql", N: 1},
	}, got)
	assert.Empty(t, Count(nil))
}

func TestExpand(t *testing.T) {
	v := DefaultVocabulary()
	tests := map[string]string{
		"ml":          "machine learning",
		"ML":          "machine learning",
		"js":          "javascript",
		"mlear":       "machine learning",
		"python":      "python",
		"ml engineer": "ml engineer",
		"Django":      "django",
	}
	for in, want := range tests {
		assert.Equal(t, want, v.Expand(in), "input %q", in)
	}
}
