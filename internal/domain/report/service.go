package report

import "context"

// ReportService defines read-only reporting.
type ReportService interface {
	RevenueSummary(ctx context.Context, month string) (RevenueSummary, error)
	OutstandingBalances(ctx context.Context, limit int) ([]OutstandingBalance, error)
	DashboardCounts(ctx context.Context) (DashboardCounts, error)
}
