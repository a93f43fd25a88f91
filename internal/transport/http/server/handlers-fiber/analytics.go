package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"leadflow-crm/internal/api"
	"leadflow-crm/internal/mapper"
)

// GetAnalytics returns the status, source and monthly breakdowns.
func (h *Handler) GetAnalytics(c *fiber.Ctx) error {
	snap, err := h.uc.Analytics(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIAnalytics(snap))
}

// GetHealth is the unauthenticated liveness probe.
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
