package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Senior GoLang Dev", "senior golang dev"},
		{"punctuation becomes space", "Node.js, C++!", "node js  c   "},
		{"digits kept", "Python3 since 2019", "python3 since 2019"},
		{"newlines kept", "a\nb\tc", "a\nb\tc"},
		{"non-ascii letters replaced", "café", "caf "},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{
		"Looking for an ML engineer role!",
		"scikit-learn / TensorFlow (2 yrs)",
		"already normalized text 42",
		"",
	} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
	assert.Equal(t, "python developer 2024", Normalize("python developer 2024"))
}

func TestTokenize(t *testing.T) {
	v := DefaultVocabulary()

	assert.Equal(t,
		[]string{"ml", "engineer", "startup"},
		v.Tokenize(Normalize("ML engineer at a startup")),
	)
	assert.Equal(t,
		[]string{"node", "js", "developer"},
		v.Tokenize(Normalize("Node.js developer")),
		"js is a synonym key and survives the length filter",
	)
	assert.Empty(t, v.Tokenize(Normalize("it is what it is")))
	assert.Empty(t, v.Tokenize(""))
}
