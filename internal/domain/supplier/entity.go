package supplier

import "time"

type Supplier struct {
	ID                 string
	OrganizationID     string
	Name               string
	RegistrationNumber *string
	TaxNumber          *string
	Email              *string
	Phone              *string
	AddressLine        *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	ContractorCount *int64
}
