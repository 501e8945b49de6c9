package dto

import (
	"time"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// UserResponse is the console's user row.
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	Verified  bool            `json:"verified"`
	Banned    bool            `json:"banned"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserDetailResponse adds the activity counts shown on the detail view.
type UserDetailResponse struct {
	UserResponse
	Stats UserStatsResponse `json:"stats"`
}

// UserStatsResponse aggregates per-user counts.
type UserStatsResponse struct {
	Properties int `json:"properties"`
	Leases     int `json:"leases"`
	Reports    int `json:"reports"`
}

// BanRequest toggles the banned flag.
type BanRequest struct {
	Banned bool `json:"banned"`
}

// SendMessageRequest carries an ad hoc admin message.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// DeleteUserRequest matches the console's delete-user endpoint payload.
type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Verified:  user.Verified,
		Banned:    user.Banned,
		CreatedAt: user.CreatedAt,
	}
}
