package payroll

import "context"

type PayrollRepository interface {
	// ReplaceForMonth deletes every payroll row for the month, then inserts
	// the given rows. Full replace, not merge: the payroll run regenerates
	// the month from scratch.
	ReplaceForMonth(ctx context.Context, month string, rows []Payroll) ([]Payroll, error)

	ListForMonth(ctx context.Context, month string) ([]Payroll, error)
}
