package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Center owner - full access, destructive operations
	RoleStaff Role = "staff" // Front-desk staff - attendance, payments
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user may run destructive operations
// (clear ledger, bulk attendance deletes, payroll runs).
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
