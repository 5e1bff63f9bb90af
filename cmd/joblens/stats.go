package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/joblens/pkg/config"
	"github.com/artem13815/joblens/pkg/logging"
	pgrepo "github.com/artem13815/joblens/pkg/repository/postgres"
	"github.com/artem13815/joblens/pkg/stats"
	"github.com/artem13815/joblens/pkg/storage/postgres"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print user, upload and search totals",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var (
	statsDatabaseURL string
	statsJSON        bool
)

func init() {
	statsCmd.Flags().StringVar(&statsDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print totals as JSON")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	dsn := statsDatabaseURL
	if dsn == "" {
		dsn = cfg.DatabaseURL
	}
	if dsn == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := cmd.Context()
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	pool, err := postgres.Connect(ctx, dsn, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	counts, err := pgrepo.NewStatsRepository(pool).Counts(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	return printStats(cmd.OutOrStdout(), counts, statsJSON)
}

func printStats(w io.Writer, c stats.Counts, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(c)
	}
	_, err := fmt.Fprintf(w, "users:    %d\nuploads:  %d\nsearches: %d\n", c.Users, c.Uploads, c.Searches)
	return err
}
