package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/billing"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) billing.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, student_id, month, amount, generated_date, status, paid_date, created_at, updated_at`

func scanInvoice(row pgx.Row) (billing.Invoice, error) {
	var inv billing.Invoice
	err := row.Scan(
		&inv.ID, &inv.StudentID, &inv.Month, &inv.Amount, &inv.GeneratedDate,
		&inv.Status, &inv.PaidDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

// Create implements billing.InvoiceRepository.
func (r *invoiceRepository) Create(ctx context.Context, inv billing.Invoice) (billing.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return billing.Invoice{}, fmt.Errorf("failed to generate invoice id: %w", err)
	}
	inv.ID = id.String()

	query := `
		INSERT INTO invoices (id, student_id, month, amount, generated_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		inv.ID, inv.StudentID, inv.Month, inv.Amount, inv.GeneratedDate, inv.Status,
	).Scan(&inv.CreatedAt, &inv.UpdatedAt)

	if err != nil {
		return billing.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return inv, nil
}

// GetByID implements billing.InvoiceRepository.
func (r *invoiceRepository) GetByID(ctx context.Context, id string) (billing.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.Invoice{}, billing.ErrInvoiceNotFound
		}
		return billing.Invoice{}, fmt.Errorf("failed to get invoice by ID: %w", err)
	}

	return inv, nil
}

// List implements billing.InvoiceRepository.
func (r *invoiceRepository) List(ctx context.Context, filter billing.InvoiceFilter) ([]billing.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.StudentID != nil && *filter.StudentID != "" {
		baseWhere += fmt.Sprintf(" AND student_id = $%d", argIdx)
		args = append(args, *filter.StudentID)
		argIdx++
	}
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM invoices WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
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
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE %s
		ORDER BY generated_date DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []billing.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, total, nil
}

// SetStatus implements billing.InvoiceRepository.
func (r *invoiceRepository) SetStatus(ctx context.Context, id string, status billing.InvoiceStatus, paidDate *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE invoices SET status = $1, paid_date = $2, updated_at = NOW() WHERE id = $3`

	tag, err := q.Exec(ctx, query, status, paidDate, id)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return billing.ErrInvoiceNotFound
	}

	return nil
}

// HasActiveForStudentMonth implements billing.InvoiceRepository.
func (r *invoiceRepository) HasActiveForStudentMonth(ctx context.Context, studentID, month string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM invoices
			WHERE student_id = $1
			  AND month = $2
			  AND status <> 'CANCELLED'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, studentID, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active invoice: %w", err)
	}

	return exists, nil
}

// DeleteAll implements billing.InvoiceRepository.
func (r *invoiceRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM invoices`); err != nil {
		return fmt.Errorf("failed to delete all invoices: %w", err)
	}

	return nil
}
