package organization

import "time"

type Organization struct {
	ID                 string
	Name               string
	Username           string
	RegistrationNumber *string
	TaxNumber          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
