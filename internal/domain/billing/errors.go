package billing

import "errors"

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceAlreadyCancelled = errors.New("invoice is already cancelled")
	ErrInvoiceCancelledStatus  = errors.New("cancelled invoices cannot change status")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvoiceTransactionEdit  = errors.New("invoice transactions cannot be edited directly; cancel the invoice instead")
	ErrReversalTransactionEdit = errors.New("cancellation reversals cannot be edited or deleted")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInvalidTransactionType  = errors.New("invalid transaction type")
	ErrInvalidInvoiceStatus    = errors.New("invalid invoice status")
)
