package student

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Student is a center student. ID is human-assigned (a student code),
// not generated.
//
// Balance is a cached aggregate in integer currency units: it must always
// equal the signed sum of the student's ledger transactions. Negative means
// the student owes money, positive is credit on account. Every write goes
// through the ledger choke point in the billing service; nothing else may
// touch it.
type Student struct {
	ID           string
	FullName     string
	Status       Status
	Balance      int64
	Phone        *string
	Email        *string
	GuardianName *string
	Note         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
