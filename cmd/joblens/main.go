// Command joblens runs keyword extraction from the terminal and reports database totals.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/joblens/pkg/config"
	"github.com/artem13815/joblens/pkg/nlp"
)

var rootCmd = &cobra.Command{
	Use:           "joblens",
	Short:         "Keyword extraction and job-search tooling",
	Long:          "joblens extracts skills, role titles and a city from resumes and reports totals of the joblens database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	vocabularyPath  string
	vocabularyMatch string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&vocabularyPath, "vocabulary", "", "Path to a vocabulary YAML file (overrides VOCABULARY_PATH)")
	rootCmd.PersistentFlags().StringVar(&vocabularyMatch, "match", "", "Phrase matching mode: substring or word (overrides VOCABULARY_MATCH)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newExtractor builds the extractor from config, letting flags win over env.
func newExtractor(cfg config.Config, maxKeywords int) (*nlp.Extractor, error) {
	path := cfg.VocabularyPath
	if vocabularyPath != "" {
		path = vocabularyPath
	}
	match := cfg.VocabularyMatch
	if vocabularyMatch != "" {
		match = vocabularyMatch
	}

	vocab := nlp.DefaultVocabulary()
	if path != "" {
		v, err := nlp.LoadVocabularyFile(path)
		if err != nil {
			return nil, err
		}
		vocab = v
	}
	mode, err := nlp.ParseMatchMode(match)
	if err != nil {
		return nil, err
	}
	if maxKeywords <= 0 {
		maxKeywords = cfg.MaxKeywords
	}
	return nlp.NewExtractor(vocab.WithMatchMode(mode), nlp.WithMaxKeywords(maxKeywords)), nil
}
