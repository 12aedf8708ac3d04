package student

import "context"

type StudentRepository interface {
	Create(ctx context.Context, s Student) (Student, error)
	GetByID(ctx context.Context, id string) (Student, error)
	List(ctx context.Context, filter StudentFilter) ([]Student, int64, error)

	// ListAll returns every student, unpaginated. The billing and payroll
	// runs iterate the full roster.
	ListAll(ctx context.Context) ([]Student, error)
	Update(ctx context.Context, s Student) error
	Delete(ctx context.Context, id string) error

	// ApplyBalanceDelta adds delta to the cached balance. Only the billing
	// service's ledger choke point calls this, always in the same database
	// transaction as the ledger write.
	ApplyBalanceDelta(ctx context.Context, id string, delta int64) error

	// ResetAllBalances zeroes every student balance. Part of the
	// clear-all-transactions batch.
	ResetAllBalances(ctx context.Context) error
}
