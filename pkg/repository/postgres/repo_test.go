package postgres

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/joblens/pkg/search"
	"github.com/artem13815/joblens/pkg/stats"
	"github.com/artem13815/joblens/pkg/upload"
	"github.com/artem13815/joblens/pkg/user"
)

type call struct {
	sql  string
	args []any
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	pos  int
}

func (r *fakeRows) Close() {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte { return nil }
func (r *fakeRows) Conn() *pgx.Conn { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.pos-1].Scan(dest...) }

type fakeDB struct {
	execs   []call
	queries []call
	row     fakeRow
	rows    *fakeRows
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, call{sql, args})
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.queries = append(db.queries, call{sql, args})
	if db.rows == nil {
		return &fakeRows{}, nil
	}
	return db.rows, nil
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.queries = append(db.queries, call{sql, args})
	return db.row
}

func uploadRow(id uuid.UUID, created time.Time) fakeRow {
	return fakeRow{values: []any{
		id, uuid.Nil, "cv.pdf", "resume", "python developer", "uploads/abc.pdf",
		[]string{"python", "developer"}, "pune", created,
	}}
}

func TestNewRepositoriesEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	_, err := NewUserRepository(db)
	require.NoError(t, err)
	_, err = NewUploadRepository(db)
	require.NoError(t, err)
	_, err = NewSearchRepository(db)
	require.NoError(t, err)

	require.Len(t, db.execs, 3)
	assert.Contains(t, db.execs[0].sql, "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, db.execs[1].sql, "CREATE TABLE IF NOT EXISTS uploads")
	assert.Contains(t, db.execs[2].sql, "CREATE TABLE IF NOT EXISTS searches")
}

func TestUploadRepository_Create(t *testing.T) {
	db := &fakeDB{}
	repo, err := NewUploadRepository(db)
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), upload.Upload{Filename: "linkedin_paste", Source: upload.SourceLinkedIn}))
	ins := db.execs[len(db.execs)-1]
	assert.True(t, strings.Contains(ins.sql, "INSERT INTO uploads"))
	require.Len(t, ins.args, 9)
	assert.NotEqual(t, uuid.Nil, ins.args[0])
	assert.Nil(t, ins.args[1])
	assert.Equal(t, "linkedin", ins.args[3])
	assert.Equal(t, []string{}, ins.args[6])
	assert.False(t, ins.args[8].(time.Time).IsZero())
}

func TestUploadRepository_Get(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("IST", 19800))
	db := &fakeDB{row: uploadRow(id, created)}
	repo := &UploadRepository{db: db}

	u, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, upload.SourceResume, u.Source)
	assert.Equal(t, []string{"python", "developer"}, u.Keywords)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())

	db.row = fakeRow{err: pgx.ErrNoRows}
	_, err = repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, upload.ErrNotFound)

	_, err = repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, upload.ErrNotFound)
}

func TestUploadRepository_List(t *testing.T) {
	now := time.Now()
	db := &fakeDB{rows: &fakeRows{rows: []fakeRow{uploadRow(uuid.New(), now), uploadRow(uuid.New(), now)}}}
	repo := &UploadRepository{db: db}

	list, err := repo.List(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, []any{defaultLimit, 0}, db.queries[0].args)
}

func TestUploadRepository_ListEmpty(t *testing.T) {
	repo := &UploadRepository{db: &fakeDB{}}
	list, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUserRepository_Get(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{row: fakeRow{values: []any{id, "Asha", "asha@example.com", time.Now()}}}
	repo := &UserRepository{db: db}

	u, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)

	db.row = fakeRow{err: pgx.ErrNoRows}
	_, err = repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestSearchRepository(t *testing.T) {
	db := &fakeDB{}
	repo := &SearchRepository{db: db}

	userID := uuid.New()
	require.NoError(t, repo.Create(context.Background(), search.Record{
		UserID: userID, QueryText: "python django", Location: "pune", ResultsCount: 20,
	}))
	args := db.execs[0].args
	assert.Equal(t, userID, args[1])
	assert.Equal(t, "python django", args[2])
	assert.Equal(t, []string{}, args[3])
	assert.Equal(t, 20, args[5])

	db.rows = &fakeRows{rows: []fakeRow{{values: []any{
		uuid.New(), uuid.Nil, "python django", []string(nil), "pune", 20, time.Now(),
	}}}}
	recs, err := repo.List(context.Background(), 5, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.NotNil(t, recs[0].Keywords)
	assert.Equal(t, 20, recs[0].ResultsCount)
}

func TestStatsRepository_Counts(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{3, 5, 8}}}
	c, err := NewStatsRepository(db).Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.Counts{Users: 3, Uploads: 5, Searches: 8}, c)
	assert.Contains(t, db.queries[0].sql, "FROM searches")
}
