package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lodger-platform/admin-service/internal/service"
)

// OverviewHandler serves the dashboard counters.
type OverviewHandler struct {
	overview *service.OverviewService
}

// NewOverviewHandler constructs handler.
func NewOverviewHandler(overview *service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overview: overview}
}

// Stats GET /admin/overview/stats.
func (h *OverviewHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.overview.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
