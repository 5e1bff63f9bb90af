package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/joblens/api/http/presenter"
	"github.com/artem13815/joblens/pkg/search"
	"github.com/artem13815/joblens/pkg/upload"
	"github.com/artem13815/joblens/pkg/user"
)

var validate = validator.New()

// KeywordsRequest asks for keywords of an arbitrary text.
type KeywordsRequest struct {
	Text string `json:"text" validate:"max=500000"`
	Max  int    `json:"max" validate:"omitempty,min=1,max=100"`
}

// UploadForm holds the non-file fields of the multipart upload form.
type UploadForm struct {
	SourceType   string `form:"source_type" validate:"omitempty,oneof=resume linkedin"`
	LinkedInText string `form:"linkedin_text" validate:"max=500000"`
	Name         string `form:"name" validate:"max=200"`
	Email        string `form:"email" validate:"omitempty,email,max=320"`
}

// SearchRequest is the job search form.
type SearchRequest struct {
	Keywords string `json:"keywords" validate:"max=1000"`
	Location string `json:"location" validate:"max=200"`
}

// RawSearchRequest is the body of the passthrough search API.
type RawSearchRequest struct {
	Q        string `json:"q" validate:"max=1000"`
	Location string `json:"location" validate:"max=200"`
}

// bindJSON parses the body into dst and validates it. An empty body leaves dst zero.
// The returned error text is meant for the client.
func bindJSON(c *fiber.Ctx, dst any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(dst); err != nil {
			return errors.New("invalid JSON body")
		}
	}
	if err := validate.Struct(dst); err != nil {
		return errors.New(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// fail maps domain errors onto HTTP statuses.
func fail(c *fiber.Ctx, err error, fallback string) error {
	var verr upload.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, upload.ErrNotFound), errors.Is(err, user.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, search.ErrProvider):
		return presenter.Error(c, http.StatusBadGateway, err.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, fallback)
	}
}
