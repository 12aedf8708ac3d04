package class

import "time"

type FeeType string

const (
	// FeeMonthly charges Fee.Amount once per billing month for every active
	// enrolled student who attended at least once that month.
	FeeMonthly FeeType = "MONTHLY"
	// FeePerSession charges Fee.Amount per counted session.
	FeePerSession FeeType = "PER_SESSION"
	// FeePerCourse is a one-time charge, invoiced out of band via manual
	// adjustments; the recurring invoice run skips these classes.
	FeePerCourse FeeType = "PER_COURSE"
)

// Fee is the class fee configuration. Pure data; billing and payroll read it.
type Fee struct {
	Type   FeeType
	Amount int64
}

// ScheduleSlot is one weekly recurring meeting of a class.
type ScheduleSlot struct {
	DayOfWeek int // 0 = Sunday ... 6 = Saturday
	StartTime string
	EndTime   string
}

type Class struct {
	ID         string
	Name       string
	Fee        Fee
	StudentIDs []string
	TeacherIDs []string
	Schedule   []ScheduleSlot
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
