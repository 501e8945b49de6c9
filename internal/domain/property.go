package domain

// PropertyStatusAvailable marks listings counted as active on the dashboard.
const PropertyStatusAvailable = "available"

// Property is a rental listing owned by a landlord account.
type Property struct {
	ID         string
	Title      string
	Address    string
	Price      float64
	LandlordID string
	Status     string
}
