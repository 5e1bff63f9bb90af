package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/joblens/pkg/config"
	"github.com/artem13815/joblens/pkg/document"
	"github.com/artem13815/joblens/pkg/nlp"
)

const stdinArg = "-"

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract keywords and a city from resumes",
	Long: "Extract keywords and a city from pdf, docx, txt or html files. " +
		"Use - to read plain text from stdin. Files are processed concurrently, output keeps argument order.",
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

var (
	extractMax     int
	extractExplain bool
	extractJSON    bool
)

func init() {
	extractCmd.Flags().IntVarP(&extractMax, "max", "n", 0, "Maximum number of keywords (default MAX_KEYWORDS)")
	extractCmd.Flags().BoolVar(&extractExplain, "explain", false, "Print the score of every keyword")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(extractCmd)
}

// extraction is the result for one argument.
type extraction struct {
	Source   string           `json:"source"`
	Keywords []string         `json:"keywords"`
	Location string           `json:"location"`
	Scores   []nlp.ScoredTerm `json:"scores,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	ex, err := newExtractor(config.Load(), extractMax)
	if err != nil {
		return err
	}
	results, err := extractAll(cmd.Context(), ex, args, cmd.InOrStdin(), extractExplain)
	if err != nil {
		return err
	}
	if extractJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	return writeText(cmd.OutOrStdout(), results, extractExplain)
}

// extractAll reads and scores every source concurrently; results[i] belongs to sources[i].
func extractAll(ctx context.Context, ex *nlp.Extractor, sources []string, stdin io.Reader, explain bool) ([]extraction, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	stdinUses := 0
	for _, src := range sources {
		if src == stdinArg {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return nil, fmt.Errorf("stdin (-) can be given only once")
	}

	results := make([]extraction, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := readSource(src, stdin)
			if err != nil {
				return err
			}
			res := extraction{Source: src, Location: ex.Location(text)}
			if explain {
				res.Scores = ex.Explain(text, ex.MaxKeywords())
				res.Keywords = make([]string, len(res.Scores))
				for j, s := range res.Scores {
					res.Keywords[j] = s.Term
				}
			} else {
				res.Keywords = ex.ExtractKeywords(text)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readSource(src string, stdin io.Reader) (string, error) {
	if src == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return document.Clean(string(data)), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}
	text, err := document.Extract(src, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", src, err)
	}
	return text, nil
}

func writeJSON(w io.Writer, results []extraction) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeText(w io.Writer, results []extraction, explain bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "== %s ==\n", res.Source)
		}
		location := res.Location
		if location == "" {
			location = "-"
		}
		if explain {
			for _, s := range res.Scores {
				fmt.Fprintf(tw, "%s\t%.1f\n", s.Term, s.Score)
			}
		} else {
			fmt.Fprintf(tw, "keywords:\t%s\n", strings.Join(res.Keywords, ", "))
		}
		fmt.Fprintf(tw, "location:\t%s\n", location)
	}
	return tw.Flush()
}
