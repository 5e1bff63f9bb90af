package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/joblens/api/http/presenter"
	"github.com/artem13815/joblens/pkg/stats"
)

type AdminHandler struct {
	stats stats.Repository
}

func NewAdminHandler(repo stats.Repository) *AdminHandler {
	return &AdminHandler{stats: repo}
}

// Stats: totals of users, uploads and searches.
// @Summary Dashboard totals
// @Tags    admin
// @Produce json
// @Success 200 {object} stats.Counts
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	counts, err := h.stats.Counts(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load stats")
	}
	return presenter.JSON(c, http.StatusOK, counts)
}
