package domain

import "time"

// BroadcastTarget selects the audience of an announcement.
type BroadcastTarget string

const (
	BroadcastTargetAll       BroadcastTarget = "all"
	BroadcastTargetLandlords BroadcastTarget = "landlords"
	BroadcastTargetStudents  BroadcastTarget = "students"
)

// Broadcast records an announcement fanned out to a user segment.
type Broadcast struct {
	ID             string
	Title          string
	Message        string
	Target         BroadcastTarget
	Type           NotificationType
	SenderID       string
	RecipientCount int
	CreatedAt      time.Time
}

// OverviewStats summarizes the dashboard counters.
type OverviewStats struct {
	TotalUsers       int `json:"total_users"`
	ActiveProperties int `json:"active_properties"`
	LeaseAgreements  int `json:"lease_agreements"`
	PendingReports   int `json:"pending_reports"`
}
