package dto

import (
	"time"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// ReportResponse is the moderation table row.
type ReportResponse struct {
	ID               string              `json:"id"`
	ReportedUserID   string              `json:"reported_user_id"`
	ReportedUserName string              `json:"reported_user_name"`
	ReporterID       string              `json:"reporter_id"`
	Reason           string              `json:"reason"`
	Description      string              `json:"description"`
	Status           domain.ReportStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
}

// ReportCreateRequest is the intake payload from the reporting flow.
type ReportCreateRequest struct {
	ReportedUserID   string `json:"reported_user_id"`
	ReportedUserName string `json:"reported_user_name"`
	ReporterID       string `json:"reporter_id"`
	Reason           string `json:"reason"`
	Description      string `json:"description"`
}

// ResolveReportRequest carries the moderation decision.
type ResolveReportRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// NotifyAdminRequest matches the console's notify-admin endpoint payload.
type NotifyAdminRequest struct {
	Report NotifyAdminReport `json:"report"`
}

// NotifyAdminReport is the report fragment the alert needs.
type NotifyAdminReport struct {
	ID               string `json:"id"`
	ReportedUserName string `json:"reportedUserName"`
	Reason           string `json:"reason"`
	Description      string `json:"description"`
}

// NewReportResponse maps a domain report.
func NewReportResponse(report domain.Report) ReportResponse {
	return ReportResponse{
		ID:               report.ID,
		ReportedUserID:   report.ReportedUserID,
		ReportedUserName: report.ReportedUserName,
		ReporterID:       report.ReporterID,
		Reason:           report.Reason,
		Description:      report.Description,
		Status:           report.Status,
		CreatedAt:        report.CreatedAt,
	}
}
