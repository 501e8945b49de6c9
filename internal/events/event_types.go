package events

import (
	"time"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReportCreated  EventType = "report_created"
	EventReportResolved EventType = "report_resolved"
	EventUserVerified   EventType = "user_verified"
	EventUserBanned     EventType = "user_banned"
	EventUserDeleted    EventType = "user_deleted"
	EventBroadcastSent  EventType = "broadcast_sent"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReportCreatedPayload carries the fields the admin alert needs.
type ReportCreatedPayload struct {
	ReportID         string `json:"report_id"`
	ReportedUserID   string `json:"reported_user_id"`
	ReportedUserName string `json:"reported_user_name"`
	Reason           string `json:"reason"`
}

// ReportResolvedPayload payload.
type ReportResolvedPayload struct {
	ReportID string              `json:"report_id"`
	Decision domain.ReportStatus `json:"decision"`
	Reason   string              `json:"reason,omitempty"`
}

// UserModeratedPayload covers verify/ban/delete events.
type UserModeratedPayload struct {
	UserID string `json:"user_id"`
	Banned *bool  `json:"banned,omitempty"`
}

// BroadcastSentPayload payload.
type BroadcastSentPayload struct {
	BroadcastID    string                 `json:"broadcast_id"`
	Target         domain.BroadcastTarget `json:"target"`
	RecipientCount int                    `json:"recipient_count"`
}
