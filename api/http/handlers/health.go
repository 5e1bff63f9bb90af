package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/joblens/api/http/presenter"
	"github.com/artem13815/joblens/pkg/health"
)

const readyTimeout = time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// HealthResponse is the probe body. Checks carries every dependency status when not ready.
type HealthResponse struct {
	Status  string            `json:"status"`
	Details string            `json:"details,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready: readiness check that pings postgres and, when configured, redis.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, HealthResponse{
			Status:  "not_ready",
			Details: err.Error(),
			Checks:  h.svc.Report(ctx),
		})
	}
	return presenter.JSON(c, http.StatusOK, HealthResponse{Status: "ready"})
}
