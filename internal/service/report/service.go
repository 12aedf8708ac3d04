package report

import (
	"context"

	"github.com/edupoint/edupoint-backend-go/internal/domain/report"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

// RevenueSummary implements report.ReportService.
func (s *ReportServiceImpl) RevenueSummary(ctx context.Context, month string) (report.RevenueSummary, error) {
	if !validator.IsValidMonth(month) {
		return report.RevenueSummary{}, validator.ValidationErrors{
			{Field: "month", Message: "month must be YYYY-MM"},
		}
	}
	return s.reportRepo.GetRevenueSummary(ctx, month)
}

// OutstandingBalances implements report.ReportService.
func (s *ReportServiceImpl) OutstandingBalances(ctx context.Context, limit int) ([]report.OutstandingBalance, error) {
	return s.reportRepo.ListOutstandingBalances(ctx, limit)
}

// DashboardCounts implements report.ReportService.
func (s *ReportServiceImpl) DashboardCounts(ctx context.Context) (report.DashboardCounts, error) {
	return s.reportRepo.GetDashboardCounts(ctx)
}
