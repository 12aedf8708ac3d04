package payroll

import "context"

// PayrollService defines business logic for monthly payroll runs.
type PayrollService interface {
	// GeneratePayrolls regenerates the month from scratch: one row per active
	// teacher, replacing whatever the month already had.
	GeneratePayrolls(ctx context.Context, req GeneratePayrollsRequest) ([]PayrollResponse, error)

	ListForMonth(ctx context.Context, month string) ([]PayrollResponse, error)
}
