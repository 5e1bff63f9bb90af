package upload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/joblens/pkg/document"
	"github.com/artem13815/joblens/pkg/events"
	"github.com/artem13815/joblens/pkg/logging"
	"github.com/artem13815/joblens/pkg/nlp"
	"github.com/artem13815/joblens/pkg/storage/blob"
	"github.com/artem13815/joblens/pkg/user"
)

// IngestRequest carries either a file (SourceResume) or pasted text (SourceLinkedIn).
type IngestRequest struct {
	Source       Source
	Filename     string
	ContentType  string
	Data         []byte
	LinkedInText string
	Name         string
	Email        string
}

// Suggestion pre-fills the job search form.
type Suggestion struct {
	Keywords string `json:"kw"`
	Location string `json:"loc"`
}

type IngestResult struct {
	Upload     Upload     `json:"upload"`
	Suggestion Suggestion `json:"suggested"`
}

// UseCase covers uploading profiles and managing stored uploads.
type UseCase interface {
	Ingest(ctx context.Context, req IngestRequest) (IngestResult, error)
	Get(ctx context.Context, id uuid.UUID) (Upload, error)
	List(ctx context.Context, limit, offset int) ([]Upload, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Deps struct {
	Uploads   Repository
	Users     user.Repository
	Blobs     blob.Store
	Extractor *nlp.Extractor
	Events    events.Publisher
	Log       *logrus.Entry
	// MaxBytes caps the size of an uploaded file.
	MaxBytes int64
	// QueryKeywords is how many keywords go into the suggested query.
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
	d.Log = logging.Component(d.Log, "upload")
	return &service{Deps: d}
}

func (s *service) Ingest(ctx context.Context, req IngestRequest) (IngestResult, error) {
	up := Upload{
		ID:        uuid.New(),
		Source:    req.Source,
		CreatedAt: time.Now().UTC(),
	}

	switch req.Source {
	case SourceLinkedIn:
		up.Filename = LinkedInFilename
		up.Text = req.LinkedInText
	case SourceResume:
		if err := s.validateFile(req); err != nil {
			return IngestResult{}, err
		}
		up.Filename = filepath.Base(req.Filename)
		if s.Blobs != nil {
			uri, err := s.Blobs.Put(ctx, blob.Key(req.Data, req.Filename), req.Data, req.ContentType)
			if err != nil {
				return IngestResult{}, fmt.Errorf("store file: %w", err)
			}
			up.StorageURI = uri
		}
		up.Text = document.ExtractBestEffort(s.Log, req.Filename, req.Data)
	default:
		return IngestResult{}, ErrValidation(fmt.Sprintf("unknown source_type %q", req.Source))
	}

	if u, ok := user.New(req.Name, req.Email); ok && s.Users != nil {
		if err := s.Users.Create(ctx, u); err != nil {
			s.releaseBlob(ctx, up.ID, up.StorageURI)
			return IngestResult{}, fmt.Errorf("save user: %w", err)
		}
		up.UserID = u.ID
	}

	up.Keywords = s.Extractor.ExtractKeywords(up.Text)
	// Pasted LinkedIn profiles never carry a location suggestion.
	if up.Source == SourceResume {
		up.Location = s.Extractor.Location(up.Text)
	}

	if err := s.Uploads.Create(ctx, up); err != nil {
		s.releaseBlob(ctx, up.ID, up.StorageURI)
		return IngestResult{}, fmt.Errorf("save upload: %w", err)
	}
	s.publish(ctx, up)

	s.Log.WithFields(logrus.Fields{
		"upload_id": up.ID,
		"source":    up.Source,
		"keywords":  len(up.Keywords),
		"location":  up.Location,
	}).Info("upload ingested")

	return IngestResult{
		Upload: up,
		Suggestion: Suggestion{
			Keywords: nlp.QueryTerms(up.Keywords, s.QueryKeywords),
			Location: up.Location,
		},
	}, nil
}

func (s *service) validateFile(req IngestRequest) error {
	if strings.TrimSpace(req.Filename) == "" || len(req.Data) == 0 {
		return ErrValidation("file is required")
	}
	if !document.Allowed(req.Filename) {
		return ErrValidation("file not allowed: use pdf, docx, txt or html")
	}
	if s.MaxBytes > 0 && int64(len(req.Data)) > s.MaxBytes {
		return ErrValidation(fmt.Sprintf("file too large: limit is %d bytes", s.MaxBytes))
	}
	return nil
}

func (s *service) publish(ctx context.Context, up Upload) {
	payload := map[string]any{
		"id":        up.ID,
		"source":    up.Source,
		"keywords":  up.Keywords,
		"location":  up.Location,
		"createdAt": up.CreatedAt,
	}
	if up.UserID != uuid.Nil {
		payload["userId"] = up.UserID
	}
	if err := s.Events.Publish(ctx, events.UploadCreated, payload); err != nil {
		s.Log.WithError(err).Warn("publish upload event")
	}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Upload, error) {
	return s.Uploads.Get(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Upload, error) {
	return s.Uploads.List(ctx, limit, offset)
}

// Delete removes the row, then the blob once no other upload shares it.
// Blob cleanup failures are only logged.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	up, err := s.Uploads.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.releaseBlob(ctx, id, up.StorageURI)
	return nil
}

// releaseBlob deletes the stored file when no upload row references it any more.
func (s *service) releaseBlob(ctx context.Context, id uuid.UUID, storageURI string) {
	if s.Blobs == nil || storageURI == "" {
		return
	}
	log := s.Log.WithField("upload_id", id)
	refs, err := s.Uploads.References(ctx, storageURI)
	if err != nil {
		log.WithError(err).Warn("count blob references")
		return
	}
	if refs > 0 {
		return
	}
	if err := s.Blobs.Delete(ctx, filepath.Base(storageURI)); err != nil {
		log.WithError(err).Warn("delete blob")
	}
}

// ErrValidation is a bad-input error; handlers map it to 400.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
