package billing

import (
	"context"
	"time"
)

type InvoiceFilter struct {
	StudentID *string
	Month     *string
	Status    *string
	Page      int
	Limit     int
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)

	// SetStatus updates status and paid date. Cancellation goes through
	// here too; invoices are never deleted individually.
	SetStatus(ctx context.Context, id string, status InvoiceStatus, paidDate *time.Time) error

	// HasActiveForStudentMonth reports whether a non-cancelled invoice
	// already exists for the student and period. The invoice run uses it as
	// the double-billing guard.
	HasActiveForStudentMonth(ctx context.Context, studentID, month string) (bool, error)

	// DeleteAll wipes the collection. Only the clear-all batch calls it.
	DeleteAll(ctx context.Context) error
}

type LedgerFilter struct {
	StudentID *string
	Type      *string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type LedgerRepository interface {
	Create(ctx context.Context, tx Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, filter LedgerFilter) ([]Transaction, int64, error)

	// UpdateAmount replaces amount, date and description of an entry. The
	// service re-applies the balance delta in the same database transaction.
	UpdateAmount(ctx context.Context, id string, amount int64, date time.Time, description string) error

	Delete(ctx context.Context, id string) error

	// ListForStudent returns one student's full ledger, newest first.
	ListForStudent(ctx context.Context, studentID string) ([]Transaction, error)

	// SumForStudent replays the ledger for one student. Used by the balance
	// audit, never by the hot path.
	SumForStudent(ctx context.Context, studentID string) (int64, error)

	// DeleteAll wipes the collection. Only the clear-all batch calls it.
	DeleteAll(ctx context.Context) error
}
