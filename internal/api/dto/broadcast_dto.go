package dto

import (
	"time"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// BroadcastRequest carries an announcement.
type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Target  string `json:"target"`
	Type    string `json:"type"`
}

// BroadcastResponse describes a sent or historical broadcast.
type BroadcastResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	Target         domain.BroadcastTarget  `json:"target"`
	Type           domain.NotificationType `json:"type"`
	RecipientCount int                     `json:"count"`
	CreatedAt      time.Time               `json:"created_at"`
}

// LeaseResponse is the lease table row.
type LeaseResponse struct {
	ID         string             `json:"id"`
	PropertyID string             `json:"property_id"`
	LandlordID string             `json:"landlord_id"`
	TenantID   string             `json:"tenant_id"`
	Status     domain.LeaseStatus `json:"status"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Price      *float64           `json:"price,omitempty"`
}

// NewBroadcastResponse maps a domain broadcast.
func NewBroadcastResponse(broadcast domain.Broadcast) BroadcastResponse {
	return BroadcastResponse{
		ID:             broadcast.ID,
		Title:          broadcast.Title,
		Message:        broadcast.Message,
		Target:         broadcast.Target,
		Type:           broadcast.Type,
		RecipientCount: broadcast.RecipientCount,
		CreatedAt:      broadcast.CreatedAt,
	}
}

// NewLeaseResponse maps a domain lease.
func NewLeaseResponse(lease domain.Lease) LeaseResponse {
	return LeaseResponse{
		ID:         lease.ID,
		PropertyID: lease.PropertyID,
		LandlordID: lease.LandlordID,
		TenantID:   lease.TenantID,
		Status:     lease.Status,
		StartDate:  lease.StartDate,
		EndDate:    lease.EndDate,
		Price:      lease.Price,
	}
}
