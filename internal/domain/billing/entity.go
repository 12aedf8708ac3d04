package billing

import "time"

type InvoiceStatus string

const (
	InvoiceUnpaid    InvoiceStatus = "UNPAID"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is the accrual-basis record: "this much was billed for this
// period". The cash side lives in the ledger; the two views agree by
// construction because issuance and cancellation each write both.
type Invoice struct {
	ID            string
	StudentID     string
	Month         string // billing period label, "YYYY-MM"
	Amount        int64  // positive, the billed amount
	GeneratedDate time.Time
	Status        InvoiceStatus
	PaidDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TransactionType string

const (
	TxInvoice          TransactionType = "INVOICE"
	TxPayment          TransactionType = "PAYMENT"
	TxAdjustmentCredit TransactionType = "ADJUSTMENT_CREDIT"
	TxAdjustmentDebit  TransactionType = "ADJUSTMENT_DEBIT"
)

// Transaction is one entry of the append-only student ledger. Amount is
// signed: positive moves the balance toward credit, negative increases
// debt. A student's balance is the running sum of these rows.
//
// IsReversal marks the offsetting credit written when an invoice is
// cancelled; reports exclude reversals from revenue on this flag rather
// than by matching description text.
type Transaction struct {
	ID               string
	StudentID        string
	Date             time.Time
	Amount           int64
	Type             TransactionType
	Description      string
	IsReversal       bool
	RelatedInvoiceID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Delta returns the signed ledger amount for a manual entry of the given
// type. PAYMENT and ADJUSTMENT_CREDIT reduce debt, ADJUSTMENT_DEBIT
// increases it. The caller passes amount as a positive magnitude.
func Delta(kind TransactionType, amount int64) int64 {
	if kind == TxAdjustmentDebit {
		return -amount
	}
	return amount
}
