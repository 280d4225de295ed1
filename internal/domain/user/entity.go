package user

import "time"

type Role string

const (
	RoleOwner      Role = "owner"      // Organization owner - full access
	RoleFinance    Role = "finance"    // Can approve invoices and withholding
	RoleManager    Role = "manager"    // Can approve timesheets
	RoleContractor Role = "contractor" // Submits own timesheets
)

type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   *string
	Role           Role
	FullName       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOwner checks if user is the organization owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// CanApproveTimesheets checks if user can approve timesheets
func (u *User) CanApproveTimesheets() bool {
	return u.Role == RoleManager || u.Role == RoleFinance || u.Role == RoleOwner
}

// CanApproveInvoices checks if user can approve and pay invoices
func (u *User) CanApproveInvoices() bool {
	return u.Role == RoleFinance || u.Role == RoleOwner
}
