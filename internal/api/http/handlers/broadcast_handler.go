package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lodger-platform/admin-service/internal/api/dto"
	"github.com/lodger-platform/admin-service/internal/auth"
	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/service"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// BroadcastHandler manages announcement endpoints.
type BroadcastHandler struct {
	broadcasts *service.BroadcastService
}

// NewBroadcastHandler constructs handler.
func NewBroadcastHandler(broadcasts *service.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{broadcasts: broadcasts}
}

// Send POST /admin/broadcasts.
func (h *BroadcastHandler) Send(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Seat == nil {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidArgument("invalid payload", nil)
	}

	broadcast, err := h.broadcasts.Send(c.Context(), principal.Seat.IdentityID, service.BroadcastInput{
		Title:   req.Title,
		Message: req.Message,
		Target:  domain.BroadcastTarget(req.Target),
		Type:    domain.NotificationType(req.Type),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewBroadcastResponse(*broadcast)})
}

// History GET /admin/broadcasts.
func (h *BroadcastHandler) History(c *fiber.Ctx) error {
	broadcasts, err := h.broadcasts.History(c.Context(), parseInt(c.Query("limit"), 0))
	if err != nil {
		return err
	}
	items := make([]dto.BroadcastResponse, 0, len(broadcasts))
	for _, broadcast := range broadcasts {
		items = append(items, dto.NewBroadcastResponse(broadcast))
	}
	return c.JSON(fiber.Map{"data": items})
}
