package contractor

import "time"

type Contractor struct {
	ID             string
	OrganizationID string
	SupplierID     string
	FullName       string
	Email          *string
	Phone          *string
	RoleTitle      *string
	TaxReference   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	SupplierName *string
}
