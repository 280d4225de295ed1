package project

import "time"

type Project struct {
	ID             string
	OrganizationID string
	Name           string
	Code           string
	Description    *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
