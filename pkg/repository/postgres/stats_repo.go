package postgres

import (
	"context"

	"github.com/artem13815/joblens/pkg/stats"
)

// StatsRepository reads the dashboard totals. It expects the users, uploads
// and searches tables to exist, so build it after the other repositories.
type StatsRepository struct {
	db DB
}

func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Counts(ctx context.Context) (stats.Counts, error) {
	var c stats.Counts
	err := r.db.QueryRow(ctx, `
SELECT
	(SELECT COUNT(*) FROM users),
	(SELECT COUNT(*) FROM uploads),
	(SELECT COUNT(*) FROM searches)
`).Scan(&c.Users, &c.Uploads, &c.Searches)
	return c, err
}
