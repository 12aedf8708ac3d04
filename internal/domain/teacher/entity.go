package teacher

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type SalaryType string

const (
	// SalaryMonthly pays BaseSalary flat per month regardless of sessions.
	SalaryMonthly SalaryType = "MONTHLY"
	// SalaryPerSession pays BaseSalary per session taught.
	SalaryPerSession SalaryType = "PER_SESSION"
)

type Teacher struct {
	ID         string
	FullName   string
	Status     Status
	SalaryType SalaryType
	// BaseSalary is the flat monthly amount for MONTHLY teachers and the
	// per-session rate for PER_SESSION teachers, in integer currency units.
	BaseSalary int64
	Phone      *string
	Email      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
