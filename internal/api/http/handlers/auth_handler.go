package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lodger-platform/admin-service/internal/api/dto"
	"github.com/lodger-platform/admin-service/internal/service"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// AuthHandler manages admin login and signup endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	access *service.AccessService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, access *service.AccessService) *AuthHandler {
	return &AuthHandler{auth: authService, access: access}
}

// Login POST /auth/admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidArgument("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewInvalidArgument("email and password required", nil)
	}

	session, err := h.auth.LoginAdmin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(session)})
}

// Register POST /auth/admin/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.AdminRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidArgument("invalid payload", nil)
	}

	session, err := h.auth.RegisterAdmin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": sessionResponse(session)})
}

// Roster GET /admin/roster.
func (h *AuthHandler) Roster(c *fiber.Ctx) error {
	seats, err := h.access.Roster(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AdminSeatResponse, 0, len(seats))
	for _, seat := range seats {
		items = append(items, dto.AdminSeatResponse{
			IdentityID: seat.IdentityID,
			Email:      seat.Email,
			CreatedAt:  seat.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{
		"data":  items,
		"limit": h.access.SeatLimit(),
	})
}

func sessionResponse(session *service.AdminSession) dto.AdminSessionResponse {
	return dto.AdminSessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Email:     session.Email,
		Decision:  session.Decision,
	}
}
