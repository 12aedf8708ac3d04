package postgresql

import (
	"context"
	"fmt"

	"github.com/edupoint/edupoint-backend-go/internal/domain/payroll"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ReplaceForMonth implements payroll.PayrollRepository.
// The delete and the inserts are expected to run inside one transaction;
// the payroll service wraps the call in WithTransaction.
func (r *payrollRepository) ReplaceForMonth(ctx context.Context, month string, rows []payroll.Payroll) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payrolls WHERE month = $1`, month); err != nil {
		return nil, fmt.Errorf("failed to delete payrolls for month: %w", err)
	}

	query := `
		INSERT INTO payrolls (id, teacher_id, teacher_name, month, sessions_taught, base_salary, total_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	inserted := make([]payroll.Payroll, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate payroll id: %w", err)
		}
		row.ID = id.String()

		err = q.QueryRow(ctx, query,
			row.ID, row.TeacherID, row.TeacherName, row.Month,
			row.SessionsTaught, row.BaseSalary, row.TotalSalary,
		).Scan(&row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payroll for teacher %s: %w", row.TeacherID, err)
		}

		inserted = append(inserted, row)
	}

	return inserted, nil
}

// ListForMonth implements payroll.PayrollRepository.
func (r *payrollRepository) ListForMonth(ctx context.Context, month string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, teacher_id, teacher_name, month, sessions_taught, base_salary, total_salary, created_at
		FROM payrolls
		WHERE month = $1
		ORDER BY teacher_name ASC
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(&p.ID, &p.TeacherID, &p.TeacherName, &p.Month, &p.SessionsTaught, &p.BaseSalary, &p.TotalSalary, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, nil
}
