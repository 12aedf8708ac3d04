package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// monthRange returns the half-open [first day, first day of next month)
// window for a calendar month.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// UpsertBatch implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpsertBatch(ctx context.Context, records []attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, class_id, student_id, date, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (class_id, student_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`

	for _, rec := range records {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate attendance id: %w", err)
		}
		if _, err := q.Exec(ctx, query, id.String(), rec.ClassID, rec.StudentID, rec.Date, rec.Status); err != nil {
			return fmt.Errorf("failed to upsert attendance record: %w", err)
		}
	}

	return nil
}

// DeleteForDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteForDate(ctx context.Context, classID string, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE class_id = $1 AND date = $2`, classID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for date: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteForMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteForMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	q := GetQuerier(ctx, r.db)

	start, end := monthRange(year, month)
	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE date >= $1 AND date < $2`, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for month: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountSessions implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountSessions(ctx context.Context, studentID, classID string, year int, month time.Month) (int, error) {
	q := GetQuerier(ctx, r.db)

	start, end := monthRange(year, month)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE student_id = $1
		  AND class_id = $2
		  AND date >= $3 AND date < $4
		  AND status IN ('PRESENT', 'LATE')
	`

	var count int
	if err := q.QueryRow(ctx, query, studentID, classID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return count, nil
}

// CountSessionsForMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountSessionsForMonth(ctx context.Context, year int, month time.Month) ([]attendance.SessionCount, error) {
	q := GetQuerier(ctx, r.db)

	start, end := monthRange(year, month)

	query := `
		SELECT class_id, student_id, COUNT(*)
		FROM attendance_records
		WHERE date >= $1 AND date < $2
		  AND status IN ('PRESENT', 'LATE')
		GROUP BY class_id, student_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions for month: %w", err)
	}
	defer rows.Close()

	var counts []attendance.SessionCount
	for rows.Next() {
		var c attendance.SessionCount
		if err := rows.Scan(&c.ClassID, &c.StudentID, &c.Sessions); err != nil {
			return nil, fmt.Errorf("failed to scan session count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, nil
}

// CountClassSessionsForMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountClassSessionsForMonth(ctx context.Context, year int, month time.Month) ([]attendance.ClassSessionCount, error) {
	q := GetQuerier(ctx, r.db)

	start, end := monthRange(year, month)

	query := `
		SELECT class_id, COUNT(*), COUNT(DISTINCT date)
		FROM attendance_records
		WHERE date >= $1 AND date < $2
		  AND status IN ('PRESENT', 'LATE')
		GROUP BY class_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count class sessions for month: %w", err)
	}
	defer rows.Close()

	var counts []attendance.ClassSessionCount
	for rows.Next() {
		var c attendance.ClassSessionCount
		if err := rows.Scan(&c.ClassID, &c.Rows, &c.DistinctDays); err != nil {
			return nil, fmt.Errorf("failed to scan class session count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, nil
}

// ListForClassDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForClassDate(ctx context.Context, classID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, class_id, student_id, date, status, created_at, updated_at
		FROM attendance_records
		WHERE class_id = $1 AND date = $2
		ORDER BY student_id
	`

	rows, err := q.Query(ctx, query, classID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.ClassID, &rec.StudentID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
