package domain

import "time"

// ReportStatus enumerates the report lifecycle. Both resolved and dismissed
// are terminal; there is no transition back to pending.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// Report is a user-submitted complaint against another account.
type Report struct {
	ID               string
	ReportedUserID   string
	ReportedUserName string
	ReporterID       string
	Reason           string
	Description      string
	Status           ReportStatus
	CreatedAt        time.Time
}
