package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance marking.
type AttendanceService interface {
	// SetAttendance batch-upserts records keyed by (class, student, date).
	// Re-marking a day overwrites in place.
	SetAttendance(ctx context.Context, req SetAttendanceRequest) ([]RecordResponse, error)

	// DeleteForDate removes every record for the class on that day and
	// returns how many rows went away.
	DeleteForDate(ctx context.Context, classID string, date time.Time) (int64, error)

	// DeleteForMonth removes every record in the calendar month across all
	// classes. Already-generated invoices and payrolls are snapshots and
	// stay untouched.
	DeleteForMonth(ctx context.Context, year int, month time.Month) (int64, error)

	// ListForClassDate returns one class's records on one day.
	ListForClassDate(ctx context.Context, classID string, date time.Time) ([]RecordResponse, error)
}
