package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	require.NotNil(t, v)
	assert.Same(t, v, DefaultVocabulary())

	assert.Equal(t, 1, v.Version())
	assert.Len(t, v.TechSkills(), 44)
	assert.Len(t, v.RoleTitles(), 12)
	assert.Len(t, v.Synonyms(), 7)
	assert.Len(t, v.Cities(), 31)
	assert.True(t, v.IsStopword("the"))
	assert.True(t, v.IsStopword("don't"))
	assert.False(t, v.IsStopword("python"))
	assert.True(t, v.IsSynonym("ml"))
	assert.Equal(t, MatchSubstring, v.MatchMode())
}

func TestVocabulary_AccessorsReturnCopies(t *testing.T) {
	v := DefaultVocabulary()

	skills := v.TechSkills()
	skills[0] = "cobol"
	assert.Equal(t, "python", v.TechSkills()[0])

	syn := v.Synonyms()
	syn["ml"] = "markup language"
	assert.Equal(t, "machine learning", v.Expand("ml"))

	cities := v.Cities()
	cities[0] = "paris"
	assert.Equal(t, "delhi", v.Cities()[0])
}

func TestLoadVocabulary(t *testing.T) {
	data := []byte(`
version: 3
tech_skills: ["golang", "grpc"]
role_titles: ["sre"]
synonyms: {k8s: kubernetes}
cities: ["berlin"]
stopwords: ["the"]
`)
	v, err := LoadVocabulary(data)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Version())
	assert.Equal(t, []string{"golang", "grpc"}, v.TechSkills())
	assert.Equal(t, "kubernetes", v.Expand("K8S"))

	e := NewExtractor(v)
	got := e.ExtractKeywords("k8s and golang in Berlin")
	require.NotEmpty(t, got)
	assert.Equal(t, "golang", got[0])
	assert.Contains(t, got, "kubernetes")
	assert.Equal(t, "berlin", e.Location("k8s and golang in Berlin"))
}

func TestLoadVocabulary_Invalid(t *testing.T) {
	tests := map[string]string{
		"skill and role overlap": `tech_skills: ["devops"]
role_titles: ["devops"]`,
		"upper-case skill":   `tech_skills: ["Python"]`,
		"empty city":         `cities: ["pune", " "]`,
		"upper-case synonym": `synonyms: {ML: machine learning}`,
		"empty synonym":      `synonyms: {ml: ""}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadVocabulary([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidVocabulary)
		})
	}

	_, err := LoadVocabulary([]byte("tech_skills: [unclosed"))
	assert.Error(t, err)
}

func TestLoadVocabularyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`tech_skills: ["rust"]`), 0o644))

	v, err := LoadVocabularyFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rust"}, v.TechSkills())

	_, err = LoadVocabularyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
