package report

import "context"

type ReportRepository interface {
	GetRevenueSummary(ctx context.Context, month string) (RevenueSummary, error)
	ListOutstandingBalances(ctx context.Context, limit int) ([]OutstandingBalance, error)
	GetDashboardCounts(ctx context.Context) (DashboardCounts, error)
}
