package payroll

import "time"

// SessionCountMode decides what counts as one "session taught" for
// PER_SESSION payroll. The original product counted attendance rows, which
// makes a ten-student class meeting once count as ten sessions; both
// readings are kept behind this flag.
type SessionCountMode string

const (
	CountAttendanceRows SessionCountMode = "attendance_rows"
	CountClassDays      SessionCountMode = "class_days"
)

// Payroll is one teacher's compensation for one month. Rows are snapshots:
// regenerating a month replaces them wholesale, and later attendance edits
// do not touch already-generated rows.
type Payroll struct {
	ID          string
	TeacherID   string
	TeacherName string // denormalized at generation time
	Month       string // "YYYY-MM"
	// SessionsTaught is 0 for fixed-salary teachers.
	SessionsTaught int
	BaseSalary     int64
	TotalSalary    int64
	CreatedAt      time.Time
}
