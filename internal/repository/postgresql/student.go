package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type studentRepository struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, full_name, status, balance, phone, email, guardian_name, note, created_at, updated_at`

func scanStudent(row pgx.Row) (student.Student, error) {
	var s student.Student
	err := row.Scan(
		&s.ID, &s.FullName, &s.Status, &s.Balance, &s.Phone, &s.Email,
		&s.GuardianName, &s.Note, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements student.StudentRepository.
func (r *studentRepository) Create(ctx context.Context, s student.Student) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO students (id, full_name, status, balance, phone, email, guardian_name, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.FullName, s.Status, s.Balance, s.Phone, s.Email, s.GuardianName, s.Note,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return student.Student{}, student.ErrStudentIDExists
		}
		return student.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	return s, nil
}

// GetByID implements student.StudentRepository.
func (r *studentRepository) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	s, err := scanStudent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by ID: %w", err)
	}

	return s, nil
}

// List implements student.StudentRepository.
func (r *studentRepository) List(ctx context.Context, filter student.StudentFilter) ([]student.Student, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (full_name ILIKE $%d OR id ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM students WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	selectQuery := fmt.Sprintf(`
		SELECT `+studentColumns+`
		FROM students
		WHERE %s
		ORDER BY id ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, total, nil
}

// ListAll implements student.StudentRepository.
func (r *studentRepository) ListAll(ctx context.Context) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, nil
}

// Update implements student.StudentRepository.
func (r *studentRepository) Update(ctx context.Context, s student.Student) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE students
		SET full_name = $1, status = $2, phone = $3, email = $4,
			guardian_name = $5, note = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		s.FullName, s.Status, s.Phone, s.Email, s.GuardianName, s.Note, time.Now(), s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// Delete implements student.StudentRepository.
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// ApplyBalanceDelta implements student.StudentRepository.
func (r *studentRepository) ApplyBalanceDelta(ctx context.Context, id string, delta int64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE students SET balance = balance + $1, updated_at = $2 WHERE id = $3`

	tag, err := q.Exec(ctx, query, delta, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to apply balance delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// ResetAllBalances implements student.StudentRepository.
func (r *studentRepository) ResetAllBalances(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE students SET balance = 0, updated_at = NOW()`); err != nil {
		return fmt.Errorf("failed to reset balances: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
