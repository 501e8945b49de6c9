package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lodger-platform/admin-service/internal/api/dto"
	"github.com/lodger-platform/admin-service/internal/auth"
	"github.com/lodger-platform/admin-service/internal/service"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// UsersHandler manages user administration endpoints.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// ListUsers GET /admin/users.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	limit := parseInt(c.Query("limit"), 0)
	users, err := h.accounts.ListUsers(c.Context(), c.Query("search"), limit)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, dto.NewUserResponse(user))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetUser GET /admin/users/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	user, stats, err := h.accounts.GetUserDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	resp := dto.UserDetailResponse{
		UserResponse: dto.NewUserResponse(*user),
		Stats: dto.UserStatsResponse{
			Properties: stats.Properties,
			Leases:     stats.Leases,
			Reports:    stats.Reports,
		},
	}
	return c.JSON(fiber.Map{"data": resp})
}

// VerifyUser POST /admin/users/:id/verify.
func (h *UsersHandler) VerifyUser(c *fiber.Ctx) error {
	if err := h.accounts.VerifyUser(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"verified": true}})
}

// SetBanned POST /admin/users/:id/ban.
func (h *UsersHandler) SetBanned(c *fiber.Ctx) error {
	var req dto.BanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidArgument("invalid payload", nil)
	}
	if err := h.accounts.SetBanned(c.Context(), c.Params("id"), req.Banned); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"banned": req.Banned}})
}

// SendMessage POST /admin/users/:id/messages.
func (h *UsersHandler) SendMessage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Seat == nil {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidArgument("invalid payload", nil)
	}

	msg, err := h.accounts.SendAdminMessage(c.Context(), principal.Seat.IdentityID, c.Params("id"), req.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":           msg.ID,
		"recipient_id": msg.RecipientID,
		"text":         msg.Text,
	}})
}

// DeleteUser POST /api/delete-user.
//
// The console's frontend consumes this endpoint directly, so it keeps the
// flat {success, error} response shape instead of the data/error envelope.
func (h *UsersHandler) DeleteUser(c *fiber.Ctx) error {
	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "User ID is required",
		})
	}

	if err := h.accounts.DeleteUser(c.Context(), req.UserID); err != nil {
		domainErr := apperrors.ToDomainError(err)
		status := fiber.StatusInternalServerError
		if domainErr.HTTPStatus == fiber.StatusBadRequest {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   domainErr.Message,
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
