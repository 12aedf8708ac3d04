package attendance

import (
	"context"
	"time"
)

// SessionCount is the number of countable (PRESENT/LATE) rows for one
// (class, student) pair in a month.
type SessionCount struct {
	ClassID   string
	StudentID string
	Sessions  int
}

// ClassSessionCount aggregates countable attendance per class in a month,
// both as raw rows and as distinct class-days. Payroll picks one of the two
// depending on the configured session count mode.
type ClassSessionCount struct {
	ClassID      string
	Rows         int
	DistinctDays int
}

type AttendanceRepository interface {
	// UpsertBatch inserts or updates records keyed by (class_id, student_id,
	// date). The second call for the same key wins.
	UpsertBatch(ctx context.Context, records []Record) error

	// DeleteForDate removes every record for the class on that day.
	// Exact key-range delete, one statement.
	DeleteForDate(ctx context.Context, classID string, date time.Time) (int64, error)

	// DeleteForMonth removes every record in the calendar month across all
	// classes. Invoices and payrolls already generated are snapshots and
	// stay untouched.
	DeleteForMonth(ctx context.Context, year int, month time.Month) (int64, error)

	// CountSessions counts PRESENT/LATE rows for the student in the class
	// during the month. Sole driver of PER_SESSION billing.
	CountSessions(ctx context.Context, studentID, classID string, year int, month time.Month) (int, error)

	// CountSessionsForMonth returns per-(class,student) countable row counts
	// for the whole month in one query; the invoice run uses it.
	CountSessionsForMonth(ctx context.Context, year int, month time.Month) ([]SessionCount, error)

	// CountClassSessionsForMonth returns per-class countable aggregates for
	// the payroll run.
	CountClassSessionsForMonth(ctx context.Context, year int, month time.Month) ([]ClassSessionCount, error)

	// ListForClassDate returns the records of one class on one day.
	ListForClassDate(ctx context.Context, classID string, date time.Time) ([]Record, error)
}
