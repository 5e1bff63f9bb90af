package search

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/joblens/pkg/vacancy"
)

// Query is what the job-search provider is asked for.
type Query struct {
	What  string `json:"what"`
	Where string `json:"where"`
	Page  int    `json:"page"`
}

// Normalized lower-cases and collapses whitespace so equal searches compare equal.
// Pages start at 1.
func (q Query) Normalized() Query {
	q.What = strings.Join(strings.Fields(strings.ToLower(q.What)), " ")
	q.Where = strings.Join(strings.Fields(strings.ToLower(q.Where)), " ")
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Results is one page of postings plus the provider's total hit count.
type Results struct {
	Count int               `json:"count"`
	Jobs  []vacancy.Vacancy `json:"results"`
}

// Provider is the port to the external job-search service.
type Provider interface {
	Search(ctx context.Context, q Query) (Results, error)
}

// Record is one persisted search invocation.
type Record struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId,omitempty"`
	QueryText    string    `json:"query"`
	Keywords     []string  `json:"keywords"`
	Location     string    `json:"location"`
	ResultsCount int       `json:"resultsCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Repository is the persistence port for search records.
type Repository interface {
	Create(ctx context.Context, r Record) error
	List(ctx context.Context, limit, offset int) ([]Record, error)
	Count(ctx context.Context) (int, error)
}
