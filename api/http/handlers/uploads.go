package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/joblens/api/http/presenter"
	"github.com/artem13815/joblens/pkg/upload"
)

type UploadsHandler struct {
	svc upload.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewUploadsHandler(svc upload.UseCase, maxBytes int64) *UploadsHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &UploadsHandler{svc: svc, maxBytes: maxBytes}
}

// CreateUploadResponse is returned after a profile is ingested.
type CreateUploadResponse struct {
	ID        uuid.UUID         `json:"id"`
	Keywords  []string          `json:"keywords"`
	Location  string            `json:"location"`
	Suggested upload.Suggestion `json:"suggested"`
}

// UploadDetail is an upload with its extracted text.
type UploadDetail struct {
	upload.Upload
	Text string `json:"text"`
}

// Create загружает резюме или текст профиля LinkedIn и извлекает ключевые слова.
// @Summary     Upload a resume or a LinkedIn profile
// @Description Accepts a pdf/docx/txt/html file (source_type=resume) or pasted text (source_type=linkedin), extracts keywords and suggests a search.
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Param       source_type   formData string false "resume (default) or linkedin"
// @Param       file          formData file   false "Resume file"
// @Param       linkedin_text formData string false "Pasted LinkedIn profile"
// @Param       name          formData string false "Visitor name"
// @Param       email         formData string false "Visitor email"
// @Success     201 {object} CreateUploadResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /uploads [post]
func (h *UploadsHandler) Create(c *fiber.Ctx) error {
	form := UploadForm{
		SourceType:   c.FormValue("source_type"),
		LinkedInText: c.FormValue("linkedin_text"),
		Name:         c.FormValue("name"),
		Email:        c.FormValue("email"),
	}
	if err := validate.Struct(form); err != nil {
		return presenter.Error(c, http.StatusBadRequest, validationMessage(err))
	}

	req := upload.IngestRequest{
		Source: upload.SourceResume,
		Name:   form.Name,
		Email:  form.Email,
	}
	if form.SourceType == string(upload.SourceLinkedIn) {
		req.Source = upload.SourceLinkedIn
		req.LinkedInText = form.LinkedInText
	} else {
		fh, err := c.FormFile("file")
		if err != nil || fh == nil {
			return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx, txt or html)")
		}
		file, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		}
		defer file.Close()
		data, err := readAtMost(file, h.maxBytes)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		req.Filename = fh.Filename
		req.ContentType = fh.Header.Get("Content-Type")
		req.Data = data
	}

	res, err := h.svc.Ingest(c.Context(), req)
	if err != nil {
		return fail(c, err, "failed to save upload")
	}
	return presenter.JSON(c, http.StatusCreated, CreateUploadResponse{
		ID:        res.Upload.ID,
		Keywords:  res.Upload.Keywords,
		Location:  res.Upload.Location,
		Suggested: res.Suggestion,
	})
}

// List возвращает последние загрузки.
// @Summary List uploads
// @Tags    uploads
// @Produce json
// @Param   limit  query int false "Page size (1-200, default 50)"
// @Param   offset query int false "Offset"
// @Success 200 {array} upload.Upload
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /uploads [get]
func (h *UploadsHandler) List(c *fiber.Ctx) error {
	limit, offset, err := parsePage(c, defaultPageSize)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	items, err := h.svc.List(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err, "failed to list uploads")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get возвращает загрузку вместе с извлечённым текстом.
// @Summary Get an upload
// @Tags    uploads
// @Produce json
// @Param   id path string true "Upload ID"
// @Success 200 {object} UploadDetail
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /uploads/{id} [get]
func (h *UploadsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	u, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return fail(c, err, "failed to load upload")
	}
	return presenter.JSON(c, http.StatusOK, UploadDetail{Upload: u, Text: u.Text})
}

// Delete удаляет загрузку и её файл.
// @Summary Delete an upload
// @Tags    uploads
// @Param   id path string true "Upload ID"
// @Success 204
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /uploads/{id} [delete]
func (h *UploadsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "upload not found")
		}
		return fail(c, err, "failed to delete upload")
	}
	return presenter.NoContent(c)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
