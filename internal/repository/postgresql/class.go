package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type classRepository struct {
	db *database.DB
}

func NewClassRepository(db *database.DB) class.ClassRepository {
	return &classRepository{db: db}
}

// Create implements class.ClassRepository.
func (r *classRepository) Create(ctx context.Context, c class.Class) (class.Class, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return class.Class{}, fmt.Errorf("failed to generate class id: %w", err)
	}
	c.ID = id.String()

	query := `
		INSERT INTO classes (id, name, fee_type, fee_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query, c.ID, c.Name, c.Fee.Type, c.Fee.Amount).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return class.Class{}, fmt.Errorf("failed to create class: %w", err)
	}

	for _, slot := range c.Schedule {
		if err := r.insertScheduleSlot(ctx, c.ID, slot); err != nil {
			return class.Class{}, err
		}
	}

	return c, nil
}

func (r *classRepository) insertScheduleSlot(ctx context.Context, classID string, slot class.ScheduleSlot) error {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate schedule slot id: %w", err)
	}

	query := `
		INSERT INTO class_schedules (id, class_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := q.Exec(ctx, query, id.String(), classID, slot.DayOfWeek, slot.StartTime, slot.EndTime); err != nil {
		return fmt.Errorf("failed to insert schedule slot: %w", err)
	}
	return nil
}

// GetByID implements class.ClassRepository.
func (r *classRepository) GetByID(ctx context.Context, id string) (class.Class, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, fee_type, fee_amount, created_at, updated_at
		FROM classes
		WHERE id = $1
	`

	var c class.Class
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Fee.Type, &c.Fee.Amount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return class.Class{}, class.ErrClassNotFound
		}
		return class.Class{}, fmt.Errorf("failed to get class by ID: %w", err)
	}

	if err := r.loadAssociations(ctx, &c); err != nil {
		return class.Class{}, err
	}

	return c, nil
}

func (r *classRepository) loadAssociations(ctx context.Context, c *class.Class) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT student_id FROM class_students WHERE class_id = $1 ORDER BY student_id`, c.ID)
	if err != nil {
		return fmt.Errorf("failed to query class students: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			return fmt.Errorf("failed to scan class student: %w", err)
		}
		c.StudentIDs = append(c.StudentIDs, sid)
	}
	rows.Close()

	rows, err = q.Query(ctx, `SELECT teacher_id FROM class_teachers WHERE class_id = $1 ORDER BY teacher_id`, c.ID)
	if err != nil {
		return fmt.Errorf("failed to query class teachers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tid string
		if err := rows.Scan(&tid); err != nil {
			return fmt.Errorf("failed to scan class teacher: %w", err)
		}
		c.TeacherIDs = append(c.TeacherIDs, tid)
	}
	rows.Close()

	rows, err = q.Query(ctx, `
		SELECT day_of_week, start_time, end_time
		FROM class_schedules
		WHERE class_id = $1
		ORDER BY day_of_week, start_time
	`, c.ID)
	if err != nil {
		return fmt.Errorf("failed to query class schedule: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var slot class.ScheduleSlot
		if err := rows.Scan(&slot.DayOfWeek, &slot.StartTime, &slot.EndTime); err != nil {
			return fmt.Errorf("failed to scan schedule slot: %w", err)
		}
		c.Schedule = append(c.Schedule, slot)
	}

	return nil
}

// List implements class.ClassRepository.
func (r *classRepository) List(ctx context.Context) ([]class.Class, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, fee_type, fee_amount, created_at, updated_at
		FROM classes
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query classes: %w", err)
	}
	defer rows.Close()

	var classes []class.Class
	for rows.Next() {
		var c class.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Fee.Type, &c.Fee.Amount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, c)
	}
	rows.Close()

	for i := range classes {
		if err := r.loadAssociations(ctx, &classes[i]); err != nil {
			return nil, err
		}
	}

	return classes, nil
}

// Update implements class.ClassRepository.
func (r *classRepository) Update(ctx context.Context, c class.Class) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE classes
		SET name = $1, fee_type = $2, fee_amount = $3, updated_at = $4
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, c.Name, c.Fee.Type, c.Fee.Amount, time.Now(), c.ID)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return class.ErrClassNotFound
	}

	// Schedule slots are replaced wholesale on update.
	if _, err := q.Exec(ctx, `DELETE FROM class_schedules WHERE class_id = $1`, c.ID); err != nil {
		return fmt.Errorf("failed to clear class schedule: %w", err)
	}
	for _, slot := range c.Schedule {
		if err := r.insertScheduleSlot(ctx, c.ID, slot); err != nil {
			return err
		}
	}

	return nil
}

// Delete implements class.ClassRepository.
func (r *classRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return class.ErrClassNotFound
	}

	return nil
}

// EnrollStudent implements class.ClassRepository.
func (r *classRepository) EnrollStudent(ctx context.Context, classID, studentID string) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO class_students (class_id, student_id) VALUES ($1, $2)`

	if _, err := q.Exec(ctx, query, classID, studentID); err != nil {
		if isUniqueViolation(err) {
			return class.ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to enroll student: %w", err)
	}

	return nil
}

// UnenrollStudent implements class.ClassRepository.
func (r *classRepository) UnenrollStudent(ctx context.Context, classID, studentID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM class_students WHERE class_id = $1 AND student_id = $2`, classID, studentID)
	if err != nil {
		return fmt.Errorf("failed to unenroll student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return class.ErrStudentNotEnrolled
	}

	return nil
}

// AssignTeacher implements class.ClassRepository.
func (r *classRepository) AssignTeacher(ctx context.Context, classID, teacherID string) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO class_teachers (class_id, teacher_id) VALUES ($1, $2)`

	if _, err := q.Exec(ctx, query, classID, teacherID); err != nil {
		if isUniqueViolation(err) {
			return class.ErrTeacherAlreadySet
		}
		return fmt.Errorf("failed to assign teacher: %w", err)
	}

	return nil
}

// UnassignTeacher implements class.ClassRepository.
func (r *classRepository) UnassignTeacher(ctx context.Context, classID, teacherID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM class_teachers WHERE class_id = $1 AND teacher_id = $2`, classID, teacherID)
	if err != nil {
		return fmt.Errorf("failed to unassign teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return class.ErrTeacherNotAssigned
	}

	return nil
}
