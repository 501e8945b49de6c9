package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lodger-platform/admin-service/internal/api/dto"
	"github.com/lodger-platform/admin-service/internal/repository"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// LeasesHandler serves the read-only lease table.
type LeasesHandler struct {
	leases repository.LeaseRepository
}

// NewLeasesHandler constructs handler.
func NewLeasesHandler(leases repository.LeaseRepository) *LeasesHandler {
	return &LeasesHandler{leases: leases}
}

// ListLeases GET /admin/leases.
func (h *LeasesHandler) ListLeases(c *fiber.Ctx) error {
	leases, err := h.leases.List(c.Context(), parseInt(c.Query("limit"), 0))
	if err != nil {
		return apperrors.NewExternalFailure("lease store", err)
	}
	items := make([]dto.LeaseResponse, 0, len(leases))
	for _, lease := range leases {
		items = append(items, dto.NewLeaseResponse(lease))
	}
	return c.JSON(fiber.Map{"data": items})
}
