package domain

import "time"

// UserRole distinguishes the two account types on the platform.
type UserRole string

const (
	UserRoleLandlord UserRole = "landlord"
	UserRoleStudent  UserRole = "student"
)

// User is a platform account managed through the admin console. The service
// does not own these records; it mutates single fields on behalf of admins.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	Verified  bool
	Banned    bool
	CreatedAt time.Time
}

// UserStats aggregates counts shown on the user detail view.
type UserStats struct {
	Properties int
	Leases     int
	Reports    int
}
