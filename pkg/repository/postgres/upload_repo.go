package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/artem13815/joblens/pkg/upload"
)

// UploadRepository хранит загрузки: исходный текст, ключевые слова и локацию.
type UploadRepository struct {
	db DB
}

func NewUploadRepository(db DB) (*UploadRepository, error) {
	r := &UploadRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *UploadRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS uploads (
	id UUID PRIMARY KEY,
	user_id UUID,
	filename TEXT NOT NULL,
	source TEXT NOT NULL,
	file_text TEXT NOT NULL,
	storage_uri TEXT NOT NULL DEFAULT '',
	keywords TEXT[] NOT NULL DEFAULT '{}',
	location TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_uploads_storage_uri ON uploads(storage_uri);
`)
	return err
}

const uploadColumns = `id, user_id, filename, source, file_text, storage_uri, keywords, location, created_at`

func (r *UploadRepository) Create(ctx context.Context, u upload.Upload) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	keywords := u.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	_, err := r.db.Exec(ctx, `
INSERT INTO uploads (`+uploadColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, u.ID, nullableUUID(u.UserID), u.Filename, string(u.Source), u.Text, u.StorageURI, keywords, u.Location, u.CreatedAt)
	return err
}

func scanUpload(row pgx.Row) (upload.Upload, error) {
	var u upload.Upload
	var source string
	var created time.Time
	if err := row.Scan(&u.ID, &u.UserID, &u.Filename, &source, &u.Text, &u.StorageURI, &u.Keywords, &u.Location, &created); err != nil {
		return upload.Upload{}, err
	}
	u.Source = upload.Source(source)
	u.CreatedAt = created.UTC()
	if u.Keywords == nil {
		u.Keywords = []string{}
	}
	return u, nil
}

func (r *UploadRepository) Get(ctx context.Context, id uuid.UUID) (upload.Upload, error) {
	row := r.db.QueryRow(ctx, `SELECT `+uploadColumns+` FROM uploads WHERE id = $1`, id)
	u, err := scanUpload(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return upload.Upload{}, upload.ErrNotFound
	}
	return u, err
}

func (r *UploadRepository) List(ctx context.Context, limit, offset int) ([]upload.Upload, error) {
	limit, offset = pageBounds(limit, offset)
	rows, err := r.db.Query(ctx, `
SELECT `+uploadColumns+`
FROM uploads
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []upload.Upload{}
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func (r *UploadRepository) Delete(ctx context.Context, id uuid.UUID) (upload.Upload, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM uploads WHERE id = $1 RETURNING `+uploadColumns, id)
	u, err := scanUpload(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return upload.Upload{}, upload.ErrNotFound
	}
	return u, err
}

func (r *UploadRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM uploads`).Scan(&n)
	return n, err
}

func (r *UploadRepository) References(ctx context.Context, storageURI string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM uploads WHERE storage_uri = $1`, storageURI).Scan(&n)
	return n, err
}
