package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/joblens/pkg/events"
	"github.com/artem13815/joblens/pkg/logging"
	"github.com/artem13815/joblens/pkg/nlp"
	"github.com/artem13815/joblens/pkg/vacancy"
)

// ErrProvider wraps failures of the job-search provider; handlers map it to 502.
var ErrProvider = errors.New("job search provider failed")

type RunRequest struct {
	// Keywords is the free-form keyword string typed or suggested in the form.
	Keywords string
	Location string
	UserID   uuid.UUID
}

type RunResult struct {
	Keywords string            `json:"keywords"`
	Location string            `json:"location"`
	Count    int               `json:"count"`
	Total    int               `json:"total"`
	Results  []vacancy.Vacancy `json:"results"`
}

// UseCase runs job searches.
type UseCase interface {
	// Run searches with the first few keywords and records the invocation.
	Run(ctx context.Context, req RunRequest) (RunResult, error)
	// Raw passes a query straight through to the provider without recording it.
	Raw(ctx context.Context, q, location string) (Results, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
}

type Deps struct {
	Provider  Provider
	Records   Repository
	Extractor *nlp.Extractor
	Events    events.Publisher
	Log       *logrus.Entry
	// QueryKeywords is how many leading words of the keyword string are sent.
	QueryKeywords int
}

type service struct {
	Deps
}

func NewService(d Deps) UseCase {
	if d.Extractor == nil {
		d.Extractor = nlp.NewExtractor(nil)
	}
	if d.Events == nil {
		d.Events = events.Nop{}
	}
	if d.QueryKeywords <= 0 {
		d.QueryKeywords = nlp.DefaultQueryKeywords
	}
	d.Log = logging.Component(d.Log, "search")
	return &service{Deps: d}
}

func (s *service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	kw := nlp.QueryTerms(strings.Fields(req.Keywords), s.QueryKeywords)
	loc := strings.TrimSpace(req.Location)

	res, err := s.Provider.Search(ctx, Query{What: kw, Where: loc, Page: 1})
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	jobs := res.Jobs
	if jobs == nil {
		jobs = []vacancy.Vacancy{}
	}

	rec := Record{
		ID:           uuid.New(),
		UserID:       req.UserID,
		QueryText:    kw,
		Keywords:     s.Extractor.ExtractKeywords(kw),
		Location:     loc,
		ResultsCount: len(jobs),
		CreatedAt:    time.Now().UTC(),
	}
	if s.Records != nil {
		if err := s.Records.Create(ctx, rec); err != nil {
			return RunResult{}, fmt.Errorf("save search: %w", err)
		}
	}
	if err := s.Events.Publish(ctx, events.SearchRecorded, rec); err != nil {
		s.Log.WithError(err).Warn("publish search event")
	}
	s.Log.WithFields(logrus.Fields{
		"query":    kw,
		"location": loc,
		"results":  len(jobs),
	}).Info("search recorded")

	return RunResult{
		Keywords: kw,
		Location: loc,
		Count:    len(jobs),
		Total:    res.Count,
		Results:  jobs,
	}, nil
}

func (s *service) Raw(ctx context.Context, q, location string) (Results, error) {
	res, err := s.Provider.Search(ctx, Query{What: q, Where: location, Page: 1})
	if err != nil {
		return Results{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	if res.Jobs == nil {
		res.Jobs = []vacancy.Vacancy{}
	}
	return res, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if s.Records == nil {
		return []Record{}, nil
	}
	return s.Records.List(ctx, limit, offset)
}
