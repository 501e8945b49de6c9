package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lodger-platform/admin-service/internal/api/dto"
	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/service"
	apperrors "github.com/lodger-platform/admin-service/pkg/util"
)

// ReportsHandler manages report intake and moderation endpoints.
type ReportsHandler struct {
	moderation *service.ModerationService
	alerts     *service.AdminAlertService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(moderation *service.ModerationService, alerts *service.AdminAlertService) *ReportsHandler {
	return &ReportsHandler{moderation: moderation, alerts: alerts}
}

// CreateReport POST /reports. Intake from the platform's reporting flow.
func (h *ReportsHandler) CreateReport(c *fiber.Ctx) error {
	var req dto.ReportCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidArgument("invalid payload", nil)
	}

	report, err := h.moderation.CreateReport(c.Context(), service.ReportCreateInput{
		ReportedUserID:   req.ReportedUserID,
		ReportedUserName: req.ReportedUserName,
		ReporterID:       req.ReporterID,
		Reason:           req.Reason,
		Description:      req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewReportResponse(*report)})
}

// ListReports GET /admin/reports.
func (h *ReportsHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.moderation.ListReports(c.Context(), parseInt(c.Query("limit"), 0))
	if err != nil {
		return err
	}
	items := make([]dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		items = append(items, dto.NewReportResponse(report))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetReport GET /admin/reports/:id.
func (h *ReportsHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.moderation.GetReport(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportResponse(*report)})
}

// ResolveReport POST /admin/reports/:id/resolve.
func (h *ReportsHandler) ResolveReport(c *fiber.Ctx) error {
	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidArgument("invalid payload", nil)
	}

	decision := domain.ReportStatus(req.Decision)
	if err := h.moderation.ResolveReport(c.Context(), c.Params("id"), decision, req.Reason); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": decision}})
}

// NotifyAdmin POST /api/notify-admin.
//
// The console's frontend consumes this endpoint directly, so it keeps the
// flat {success, error} response shape instead of the data/error envelope.
func (h *ReportsHandler) NotifyAdmin(c *fiber.Ctx) error {
	var req dto.NotifyAdminRequest
	if err := c.BodyParser(&req); err != nil || (req.Report.ID == "" && req.Report.Reason == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Report payload is required",
		})
	}

	h.alerts.Notify(c.Context(), domain.Report{
		ID:               req.Report.ID,
		ReportedUserName: req.Report.ReportedUserName,
		Reason:           req.Report.Reason,
		Description:      req.Report.Description,
	})
	return c.JSON(fiber.Map{"success": true})
}
