package attendance

import "time"

type Status string

const (
	StatusPresent  Status = "PRESENT"
	StatusLate     Status = "LATE"
	StatusAbsent   Status = "ABSENT"
	StatusUnmarked Status = "UNMARKED"
)

// Countable reports whether the status counts toward billing and payroll.
// ABSENT and UNMARKED never do; UNMARKED rows are kept only so the UI can
// show a day as reviewed.
func (s Status) Countable() bool {
	return s == StatusPresent || s == StatusLate
}

// Record is one attendance fact. (ClassID, StudentID, Date) is a natural
// key: re-marking the same day updates in place.
type Record struct {
	ID        string
	ClassID   string
	StudentID string
	Date      time.Time // calendar day, time part zero
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
