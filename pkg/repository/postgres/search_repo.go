package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/joblens/pkg/search"
)

// SearchRepository хранит историю поисковых запросов.
type SearchRepository struct {
	db DB
}

func NewSearchRepository(db DB) (*SearchRepository, error) {
	r := &SearchRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SearchRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS searches (
	id UUID PRIMARY KEY,
	user_id UUID,
	query_text TEXT NOT NULL,
	keywords TEXT[] NOT NULL DEFAULT '{}',
	location TEXT NOT NULL DEFAULT '',
	results_count INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_searches_created ON searches(created_at DESC);
`)
	return err
}

func (r *SearchRepository) Create(ctx context.Context, rec search.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	keywords := rec.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	_, err := r.db.Exec(ctx, `
INSERT INTO searches (id, user_id, query_text, keywords, location, results_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, rec.ID, nullableUUID(rec.UserID), rec.QueryText, keywords, rec.Location, rec.ResultsCount, rec.CreatedAt)
	return err
}

func (r *SearchRepository) List(ctx context.Context, limit, offset int) ([]search.Record, error) {
	limit, offset = pageBounds(limit, offset)
	rows, err := r.db.Query(ctx, `
SELECT id, user_id, query_text, keywords, location, results_count, created_at
FROM searches
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []search.Record{}
	for rows.Next() {
		var rec search.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.QueryText, &rec.Keywords, &rec.Location, &rec.ResultsCount, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created.UTC()
		if rec.Keywords == nil {
			rec.Keywords = []string{}
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *SearchRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM searches`).Scan(&n)
	return n, err
}
