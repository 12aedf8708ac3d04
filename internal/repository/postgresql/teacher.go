package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type teacherRepository struct {
	db *database.DB
}

func NewTeacherRepository(db *database.DB) teacher.TeacherRepository {
	return &teacherRepository{db: db}
}

const teacherColumns = `id, full_name, status, salary_type, base_salary, phone, email, created_at, updated_at`

func scanTeacher(row pgx.Row) (teacher.Teacher, error) {
	var t teacher.Teacher
	err := row.Scan(
		&t.ID, &t.FullName, &t.Status, &t.SalaryType, &t.BaseSalary,
		&t.Phone, &t.Email, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements teacher.TeacherRepository.
func (r *teacherRepository) Create(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return teacher.Teacher{}, fmt.Errorf("failed to generate teacher id: %w", err)
	}
	t.ID = id.String()

	query := `
		INSERT INTO teachers (id, full_name, status, salary_type, base_salary, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		t.ID, t.FullName, t.Status, t.SalaryType, t.BaseSalary, t.Phone, t.Email,
	).Scan(&t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return teacher.Teacher{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	return t, nil
}

// GetByID implements teacher.TeacherRepository.
func (r *teacherRepository) GetByID(ctx context.Context, id string) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`

	t, err := scanTeacher(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher by ID: %w", err)
	}

	return t, nil
}

// List implements teacher.TeacherRepository.
func (r *teacherRepository) List(ctx context.Context, activeOnly bool) ([]teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + teacherColumns + ` FROM teachers`
	args := []interface{}{}
	if activeOnly {
		query += ` WHERE status = $1`
		args = append(args, teacher.StatusActive)
	}
	query += ` ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	var teachers []teacher.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}

	return teachers, nil
}

// Update implements teacher.TeacherRepository.
func (r *teacherRepository) Update(ctx context.Context, t teacher.Teacher) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teachers
		SET full_name = $1, status = $2, salary_type = $3, base_salary = $4,
			phone = $5, email = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		t.FullName, t.Status, t.SalaryType, t.BaseSalary, t.Phone, t.Email, time.Now(), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}

// Delete implements teacher.TeacherRepository.
func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}
