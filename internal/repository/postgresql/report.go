package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/report"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetRevenueSummary implements report.ReportRepository.
func (r *reportRepository) GetRevenueSummary(ctx context.Context, month string) (report.RevenueSummary, error) {
	q := GetQuerier(ctx, r.db)

	summary := report.RevenueSummary{Month: month}

	invoiceQuery := `
		SELECT
			COALESCE(SUM(amount), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'UNPAID')
		FROM invoices
		WHERE month = $1 AND status <> 'CANCELLED'
	`
	err := q.QueryRow(ctx, invoiceQuery, month).
		Scan(&summary.TuitionBilled, &summary.InvoiceCount, &summary.UnpaidCount)
	if err != nil {
		return report.RevenueSummary{}, fmt.Errorf("failed to aggregate invoices: %w", err)
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return report.RevenueSummary{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	end := start.AddDate(0, 1, 0)

	ledgerQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'PAYMENT'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'ADJUSTMENT_CREDIT' AND NOT is_reversal), 0)
			+ COALESCE(SUM(amount) FILTER (WHERE type = 'ADJUSTMENT_DEBIT'), 0)
		FROM ledger_transactions
		WHERE date >= $1 AND date < $2
	`
	err = q.QueryRow(ctx, ledgerQuery, start, end).
		Scan(&summary.CollectedPayments, &summary.NetAdjustments)
	if err != nil {
		return report.RevenueSummary{}, fmt.Errorf("failed to aggregate ledger: %w", err)
	}

	return summary, nil
}

// ListOutstandingBalances implements report.ReportRepository.
func (r *reportRepository) ListOutstandingBalances(ctx context.Context, limit int) ([]report.OutstandingBalance, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, full_name, balance
		FROM students
		WHERE balance < 0
		ORDER BY balance ASC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query outstanding balances: %w", err)
	}
	defer rows.Close()

	var balances []report.OutstandingBalance
	for rows.Next() {
		var b report.OutstandingBalance
		if err := rows.Scan(&b.StudentID, &b.StudentName, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan outstanding balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, nil
}

// GetDashboardCounts implements report.ReportRepository.
func (r *reportRepository) GetDashboardCounts(ctx context.Context) (report.DashboardCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM students WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM teachers WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM classes),
			(SELECT COUNT(*) FROM invoices WHERE status = 'UNPAID'),
			(SELECT COALESCE(SUM(-balance), 0) FROM students WHERE balance < 0)
	`

	var counts report.DashboardCounts
	err := q.QueryRow(ctx, query).Scan(
		&counts.ActiveStudents, &counts.ActiveTeachers, &counts.Classes,
		&counts.UnpaidInvoices, &counts.TotalReceivable,
	)
	if err != nil {
		return report.DashboardCounts{}, fmt.Errorf("failed to query dashboard counts: %w", err)
	}

	return counts, nil
}
