package domain

// LeaseStatus enumerates lease agreement states.
type LeaseStatus string

const (
	LeaseStatusActive      LeaseStatus = "active"
	LeaseStatusPending     LeaseStatus = "pending"
	LeaseStatusExpired     LeaseStatus = "expired"
	LeaseStatusTerminating LeaseStatus = "terminating"
)

// Lease is a rental agreement record, read-only from the console.
type Lease struct {
	ID         string
	PropertyID string
	LandlordID string
	TenantID   string
	Status     LeaseStatus
	StartDate  string
	EndDate    string
	Price      *float64
}
