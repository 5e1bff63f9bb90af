package upload

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Source says where the text of an upload came from.
type Source string

const (
	SourceResume   Source = "resume"
	SourceLinkedIn Source = "linkedin"
)

// LinkedInFilename is stored as the filename of pasted LinkedIn profiles.
const LinkedInFilename = "linkedin_paste"

var ErrNotFound = errors.New("upload not found")

// Upload is a stored resume file or pasted profile together with what was
// extracted from it.
type Upload struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId,omitempty"`
	Filename   string    `json:"filename"`
	Source     Source    `json:"source"`
	Text       string    `json:"-"`
	StorageURI string    `json:"storageUri,omitempty"`
	Keywords   []string  `json:"keywords"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Repository is the persistence port for uploads.
type Repository interface {
	Create(ctx context.Context, u Upload) error
	Get(ctx context.Context, id uuid.UUID) (Upload, error)
	List(ctx context.Context, limit, offset int) ([]Upload, error)
	// Delete returns the removed row so the caller can clean up its blob.
	Delete(ctx context.Context, id uuid.UUID) (Upload, error)
	Count(ctx context.Context) (int, error)
	// References counts uploads that point at the same stored blob.
	References(ctx context.Context, storageURI string) (int, error)
}
