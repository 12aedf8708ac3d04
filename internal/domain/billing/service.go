package billing

import "context"

// BillingService defines the money engine: provisional tuition, the monthly
// invoice run, invoice lifecycle and the student ledger. Every ledger write
// goes through this service so the cached student balance and the ledger
// never drift.
type BillingService interface {
	// ProvisionalTuition projects accrued tuition for a period without
	// persisting anything.
	ProvisionalTuition(ctx context.Context, req PeriodRequest) (ProvisionalTuitionResponse, error)

	// GenerateInvoices materializes the provisional projection: one invoice
	// per student with a positive total, plus an INVOICE ledger entry and
	// balance debit, all in one database transaction. Students that already
	// have a non-cancelled invoice for the period are skipped and reported.
	GenerateInvoices(ctx context.Context, req PeriodRequest) (GenerateInvoicesResponse, error)

	GetInvoice(ctx context.Context, id string) (InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) (ListInvoicesResponse, error)

	// UpdateInvoiceStatus moves an invoice between UNPAID and PAID. Cancelled
	// invoices are terminal.
	UpdateInvoiceStatus(ctx context.Context, req UpdateInvoiceStatusRequest) (InvoiceResponse, error)

	// CancelInvoice marks the invoice CANCELLED and writes the offsetting
	// reversal credit. Invoices are never deleted.
	CancelInvoice(ctx context.Context, id string) (InvoiceResponse, error)

	// RecordTransaction appends a manual PAYMENT or adjustment to the ledger.
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) (TransactionResponse, error)

	ListTransactions(ctx context.Context, filter LedgerFilter) (ListTransactionsResponse, error)

	// UpdateTransaction edits a manual ledger entry; the balance moves by
	// new minus old. INVOICE entries and cancellation reversals are rejected.
	UpdateTransaction(ctx context.Context, req UpdateTransactionRequest) (TransactionResponse, error)

	// DeleteTransaction removes a manual ledger entry; the balance moves by
	// minus the old amount. INVOICE entries and reversals are rejected.
	DeleteTransaction(ctx context.Context, id string) error

	// StudentStatement lists one student's ledger newest-first, with both the
	// cached balance and the replayed ledger sum so drift is visible.
	StudentStatement(ctx context.Context, studentID string) (StatementResponse, error)

	// ClearAllTransactions wipes the ledger and all invoices and zeroes every
	// student balance, in one transaction. Admin-only season reset.
	ClearAllTransactions(ctx context.Context) error
}
