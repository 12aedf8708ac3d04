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

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) billing.LedgerRepository {
	return &ledgerRepository{db: db}
}

const ledgerColumns = `id, student_id, date, amount, type, description, is_reversal, related_invoice_id, created_at, updated_at`

func scanTransaction(row pgx.Row) (billing.Transaction, error) {
	var tx billing.Transaction
	err := row.Scan(
		&tx.ID, &tx.StudentID, &tx.Date, &tx.Amount, &tx.Type, &tx.Description,
		&tx.IsReversal, &tx.RelatedInvoiceID, &tx.CreatedAt, &tx.UpdatedAt,
	)
	return tx, err
}

// Create implements billing.LedgerRepository.
func (r *ledgerRepository) Create(ctx context.Context, tx billing.Transaction) (billing.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return billing.Transaction{}, fmt.Errorf("failed to generate transaction id: %w", err)
	}
	tx.ID = id.String()

	query := `
		INSERT INTO ledger_transactions (id, student_id, date, amount, type, description, is_reversal, related_invoice_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		tx.ID, tx.StudentID, tx.Date, tx.Amount, tx.Type, tx.Description,
		tx.IsReversal, tx.RelatedInvoiceID,
	).Scan(&tx.CreatedAt, &tx.UpdatedAt)

	if err != nil {
		return billing.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return tx, nil
}

// GetByID implements billing.LedgerRepository.
func (r *ledgerRepository) GetByID(ctx context.Context, id string) (billing.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ledgerColumns + ` FROM ledger_transactions WHERE id = $1`

	tx, err := scanTransaction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.Transaction{}, billing.ErrTransactionNotFound
		}
		return billing.Transaction{}, fmt.Errorf("failed to get transaction by ID: %w", err)
	}

	return tx, nil
}

// List implements billing.LedgerRepository.
func (r *ledgerRepository) List(ctx context.Context, filter billing.LedgerFilter) ([]billing.Transaction, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.StudentID != nil && *filter.StudentID != "" {
		baseWhere += fmt.Sprintf(" AND student_id = $%d", argIdx)
		args = append(args, *filter.StudentID)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM ledger_transactions WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
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
		SELECT `+ledgerColumns+`
		FROM ledger_transactions
		WHERE %s
		ORDER BY date DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []billing.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, total, nil
}

// UpdateAmount implements billing.LedgerRepository.
func (r *ledgerRepository) UpdateAmount(ctx context.Context, id string, amount int64, date time.Time, description string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE ledger_transactions
		SET amount = $1, date = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, amount, date, description, id)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return billing.ErrTransactionNotFound
	}

	return nil
}

// Delete implements billing.LedgerRepository.
func (r *ledgerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM ledger_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return billing.ErrTransactionNotFound
	}

	return nil
}

// ListForStudent implements billing.LedgerRepository.
func (r *ledgerRepository) ListForStudent(ctx context.Context, studentID string) ([]billing.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_transactions
		WHERE student_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query student ledger: %w", err)
	}
	defer rows.Close()

	var txs []billing.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// SumForStudent implements billing.LedgerRepository.
func (r *ledgerRepository) SumForStudent(ctx context.Context, studentID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_transactions WHERE student_id = $1`

	var sum int64
	if err := q.QueryRow(ctx, query, studentID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return sum, nil
}

// DeleteAll implements billing.LedgerRepository.
func (r *ledgerRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM ledger_transactions`); err != nil {
		return fmt.Errorf("failed to delete all transactions: %w", err)
	}

	return nil
}
