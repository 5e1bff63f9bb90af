package upload

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/joblens/pkg/events"
	"github.com/artem13815/joblens/pkg/nlp"
	"github.com/artem13815/joblens/pkg/storage/blob"
	"github.com/artem13815/joblens/pkg/user"
)

type mockUploads struct{ mock.Mock }

func (m *mockUploads) Create(ctx context.Context, u Upload) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUploads) Get(ctx context.Context, id uuid.UUID) (Upload, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Upload), args.Error(1)
}

func (m *mockUploads) List(ctx context.Context, limit, offset int) ([]Upload, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]Upload), args.Error(1)
}

func (m *mockUploads) Delete(ctx context.Context, id uuid.UUID) (Upload, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Upload), args.Error(1)
}

func (m *mockUploads) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockUploads) References(ctx context.Context, uri string) (int, error) {
	args := m.Called(ctx, uri)
	return args.Int(0), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Create(ctx context.Context, u user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUsers) Get(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type mockBlobs struct{ mock.Mock }

func (m *mockBlobs) Put(ctx context.Context, key string, data []byte, ct string) (string, error) {
	args := m.Called(ctx, key, data, ct)
	return args.String(0), args.Error(1)
}

func (m *mockBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockBlobs) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, key string, payload any) error {
	return m.Called(ctx, key, payload).Error(0)
}

const resumeText = "I am a Python developer with Django experience, looking for ML engineer role in Bangalore"

func TestIngest_Resume(t *testing.T) {
	ctx := context.Background()
	uploads, users, blobs, pub := &mockUploads{}, &mockUsers{}, &mockBlobs{}, &mockPublisher{}

	data := []byte(resumeText)
	key := blob.Key(data, "cv.txt")
	blobs.On("Put", ctx, key, data, "text/plain").Return("uploads/"+key, nil)
	users.On("Create", ctx, mock.MatchedBy(func(u user.User) bool { return u.Email == "asha@example.com" })).Return(nil)
	uploads.On("Create", ctx, mock.MatchedBy(func(u Upload) bool {
		return u.Source == SourceResume && u.Filename == "cv.txt" && u.UserID != uuid.Nil && u.Text == resumeText
	})).Return(nil)
	pub.On("Publish", ctx, events.UploadCreated, mock.Anything).Return(nil)

	svc := NewService(Deps{Uploads: uploads, Users: users, Blobs: blobs, Events: pub, MaxBytes: 1 << 20})
	res, err := svc.Ingest(ctx, IngestRequest{
		Source:      SourceResume,
		Filename:    "cv.txt",
		ContentType: "text/plain",
		Data:        data,
		Email:       "Asha@Example.com",
	})
	require.NoError(t, err)

	want := nlp.NewExtractor(nil).ExtractKeywords(resumeText)
	assert.Equal(t, want, res.Upload.Keywords)
	assert.Equal(t, "bangalore", res.Upload.Location)
	assert.Equal(t, "uploads/"+key, res.Upload.StorageURI)
	assert.Equal(t, nlp.QueryTerms(want, 2), res.Suggestion.Keywords)
	assert.Equal(t, "bangalore", res.Suggestion.Location)

	mock.AssertExpectationsForObjects(t, uploads, users, blobs, pub)
}

func TestIngest_LinkedInHasNoLocation(t *testing.T) {
	ctx := context.Background()
	uploads := &mockUploads{}
	uploads.On("Create", ctx, mock.MatchedBy(func(u Upload) bool {
		return u.Source == SourceLinkedIn && u.Filename == LinkedInFilename && u.UserID == uuid.Nil
	})).Return(nil)

	svc := NewService(Deps{Uploads: uploads, Users: &mockUsers{}})
	res, err := svc.Ingest(ctx, IngestRequest{Source: SourceLinkedIn, LinkedInText: resumeText})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Upload.Keywords)
	assert.Equal(t, "", res.Upload.Location)
	assert.Equal(t, "", res.Suggestion.Location)
	uploads.AssertExpectations(t)
}

func TestIngest_EmptyPasteStillSaved(t *testing.T) {
	ctx := context.Background()
	uploads := &mockUploads{}
	uploads.On("Create", ctx, mock.Anything).Return(nil)

	res, err := NewService(Deps{Uploads: uploads}).Ingest(ctx, IngestRequest{Source: SourceLinkedIn})
	require.NoError(t, err)
	assert.NotNil(t, res.Upload.Keywords)
	assert.Empty(t, res.Upload.Keywords)
	assert.Equal(t, "", res.Suggestion.Keywords)
}

func TestIngest_Validation(t *testing.T) {
	svc := NewService(Deps{Uploads: &mockUploads{}, MaxBytes: 4})
	cases := []IngestRequest{
		{Source: "fax"},
		{Source: SourceResume},
		{Source: SourceResume, Filename: "cv.exe", Data: []byte("x")},
		{Source: SourceResume, Filename: "cv.txt", Data: []byte("too big")},
	}
	for _, req := range cases {
		_, err := svc.Ingest(context.Background(), req)
		var verr ErrValidation
		assert.ErrorAs(t, err, &verr, "%+v", req)
	}
}

func TestIngest_UnreadableFileDegrades(t *testing.T) {
	ctx := context.Background()
	uploads, blobs := &mockUploads{}, &mockBlobs{}
	blobs.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return("s3://b/k.pdf", nil)
	uploads.On("Create", ctx, mock.MatchedBy(func(u Upload) bool { return u.Text == "" })).Return(nil)

	res, err := NewService(Deps{Uploads: uploads, Blobs: blobs}).Ingest(ctx, IngestRequest{
		Source: SourceResume, Filename: "cv.pdf", Data: []byte("not a pdf"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Upload.Keywords)
	assert.Equal(t, "", res.Upload.Location)
}

func TestIngest_EventFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	uploads, pub := &mockUploads{}, &mockPublisher{}
	uploads.On("Create", ctx, mock.Anything).Return(nil)
	pub.On("Publish", ctx, events.UploadCreated, mock.Anything).Return(errors.New("broker down"))

	_, err := NewService(Deps{Uploads: uploads, Events: pub}).Ingest(ctx, IngestRequest{
		Source: SourceLinkedIn, LinkedInText: "data scientist",
	})
	assert.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestIngest_RepositoryError(t *testing.T) {
	ctx := context.Background()
	uploads := &mockUploads{}
	uploads.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

	_, err := NewService(Deps{Uploads: uploads}).Ingest(ctx, IngestRequest{Source: SourceLinkedIn, LinkedInText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestIngest_FailedSaveReleasesBlob(t *testing.T) {
	ctx := context.Background()
	data := []byte(resumeText)
	key := blob.Key(data, "cv.txt")
	uri := "uploads/" + key

	t.Run("upload row not saved", func(t *testing.T) {
		uploads, blobs := &mockUploads{}, &mockBlobs{}
		blobs.On("Put", ctx, key, data, "").Return(uri, nil)
		uploads.On("Create", ctx, mock.Anything).Return(errors.New("db down"))
		uploads.On("References", ctx, uri).Return(0, nil)
		blobs.On("Delete", ctx, key).Return(nil)

		_, err := NewService(Deps{Uploads: uploads, Blobs: blobs}).Ingest(ctx, IngestRequest{
			Source: SourceResume, Filename: "cv.txt", Data: data,
		})
		assert.ErrorContains(t, err, "db down")
		mock.AssertExpectationsForObjects(t, uploads, blobs)
	})

	t.Run("user not saved", func(t *testing.T) {
		uploads, users, blobs := &mockUploads{}, &mockUsers{}, &mockBlobs{}
		blobs.On("Put", ctx, key, data, "").Return(uri, nil)
		users.On("Create", ctx, mock.Anything).Return(errors.New("users down"))
		uploads.On("References", ctx, uri).Return(0, nil)
		blobs.On("Delete", ctx, key).Return(nil)

		_, err := NewService(Deps{Uploads: uploads, Users: users, Blobs: blobs}).Ingest(ctx, IngestRequest{
			Source: SourceResume, Filename: "cv.txt", Data: data, Name: "Asha",
		})
		assert.ErrorContains(t, err, "users down")
		uploads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mock.AssertExpectationsForObjects(t, uploads, users, blobs)
	})

	t.Run("blob shared with an existing upload is kept", func(t *testing.T) {
		uploads, blobs := &mockUploads{}, &mockBlobs{}
		blobs.On("Put", ctx, key, data, "").Return(uri, nil)
		uploads.On("Create", ctx, mock.Anything).Return(errors.New("db down"))
		uploads.On("References", ctx, uri).Return(1, nil)

		_, err := NewService(Deps{Uploads: uploads, Blobs: blobs}).Ingest(ctx, IngestRequest{
			Source: SourceResume, Filename: "cv.txt", Data: data,
		})
		assert.Error(t, err)
		blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("last reference removes blob", func(t *testing.T) {
		uploads, blobs := &mockUploads{}, &mockBlobs{}
		uploads.On("Delete", ctx, id).Return(Upload{ID: id, StorageURI: "s3://resumes/abc.pdf"}, nil)
		uploads.On("References", ctx, "s3://resumes/abc.pdf").Return(0, nil)
		blobs.On("Delete", ctx, "abc.pdf").Return(nil)

		require.NoError(t, NewService(Deps{Uploads: uploads, Blobs: blobs}).Delete(ctx, id))
		mock.AssertExpectationsForObjects(t, uploads, blobs)
	})

	t.Run("shared blob is kept", func(t *testing.T) {
		uploads, blobs := &mockUploads{}, &mockBlobs{}
		uploads.On("Delete", ctx, id).Return(Upload{ID: id, StorageURI: "uploads/abc.pdf"}, nil)
		uploads.On("References", ctx, "uploads/abc.pdf").Return(1, nil)

		require.NoError(t, NewService(Deps{Uploads: uploads, Blobs: blobs}).Delete(ctx, id))
		blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		uploads := &mockUploads{}
		uploads.On("Delete", ctx, id).Return(Upload{}, ErrNotFound)

		err := NewService(Deps{Uploads: uploads}).Delete(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
