package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/joblens/api/http/presenter"
	"github.com/artem13815/joblens/pkg/nlp"
)

// KeywordsHandler exposes keyword extraction directly.
type KeywordsHandler struct {
	ex *nlp.Extractor
}

func NewKeywordsHandler(ex *nlp.Extractor) *KeywordsHandler {
	return &KeywordsHandler{ex: ex}
}

// KeywordsResponse lists keywords best first, the detected city and each keyword's score.
type KeywordsResponse struct {
	Keywords []string         `json:"keywords"`
	Location string           `json:"location"`
	Scores   []nlp.ScoredTerm `json:"scores"`
}

// Extract ранжирует ключевые слова текста.
// @Summary     Extract keywords
// @Description Ranks skills, role titles and frequent terms of the text and detects a city.
// @Tags        keywords
// @Accept      json
// @Produce     json
// @Param       body body KeywordsRequest true "Text to analyse"
// @Success     200 {object} KeywordsResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /keywords [post]
func (h *KeywordsHandler) Extract(c *fiber.Ctx) error {
	var req KeywordsRequest
	if err := bindJSON(c, &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	limit := req.Max
	if limit == 0 {
		limit = h.ex.MaxKeywords()
	}
	scores := h.ex.Explain(req.Text, limit)
	keywords := make([]string, len(scores))
	for i, st := range scores {
		keywords[i] = st.Term
	}
	return presenter.JSON(c, http.StatusOK, KeywordsResponse{
		Keywords: keywords,
		Location: h.ex.Location(req.Text),
		Scores:   scores,
	})
}
