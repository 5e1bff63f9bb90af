package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/joblens/api/http/presenter"
	"github.com/artem13815/joblens/pkg/search"
)

type SearchHandler struct {
	svc search.UseCase
}

func NewSearchHandler(svc search.UseCase) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Run ищет вакансии по первым ключевым словам и сохраняет запрос.
// @Summary     Search jobs
// @Description Sends the leading keywords and the location to the job-search provider and records the search.
// @Tags        search
// @Accept      json
// @Produce     json
// @Param       body body SearchRequest true "Search form"
// @Success     200 {object} search.RunResult
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     502 {object} presenter.ErrorResponse
// @Router      /search [post]
func (h *SearchHandler) Run(c *fiber.Ctx) error {
	var req SearchRequest
	if err := bindJSON(c, &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Run(c.Context(), search.RunRequest{Keywords: req.Keywords, Location: req.Location})
	if err != nil {
		return fail(c, err, "search failed")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Raw проксирует запрос к провайдеру без сохранения.
// Served at /api/search, outside the documented /api/v1 base path.
func (h *SearchHandler) Raw(c *fiber.Ctx) error {
	var req RawSearchRequest
	if err := bindJSON(c, &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Raw(c.Context(), req.Q, req.Location)
	if err != nil {
		return fail(c, err, "search failed")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// History возвращает последние поисковые запросы.
// @Summary List recorded searches
// @Tags    search
// @Produce json
// @Param   limit  query int false "Page size (1-200, default 50)"
// @Param   offset query int false "Offset"
// @Success 200 {array} search.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /searches [get]
func (h *SearchHandler) History(c *fiber.Ctx) error {
	limit, offset, err := parsePage(c, defaultPageSize)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	items, err := h.svc.List(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err, "failed to list searches")
	}
	return presenter.JSON(c, http.StatusOK, items)
}
