package billing

import (
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/pkg/validator"
)

// MonthLabel formats a billing period as its "YYYY-MM" label.
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateInvoiceStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateInvoiceStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(InvoiceUnpaid), string(InvoicePaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be UNPAID or PAID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordTransactionRequest is the manual money path: payments and
// adjustments recorded outside the invoice/attendance pipeline. Amount is a
// positive magnitude; the kind decides the ledger sign.
type RecordTransactionRequest struct {
	StudentID   string `json:"student_id"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

var manualKinds = []string{
	string(TxPayment),
	string(TxAdjustmentCredit),
	string(TxAdjustmentDebit),
}

func (r *RecordTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.Kind, manualKinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be PAYMENT, ADJUSTMENT_CREDIT or ADJUSTMENT_DEBIT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTransactionRequest struct {
	ID          string  `json:"-"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (r *UpdateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount == nil && r.Date == nil && r.Description == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "nothing to update",
		})
	}

	if r.Amount != nil && *r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InvoiceResponse struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"student_id"`
	Month         string  `json:"month"`
	Amount        int64   `json:"amount"`
	GeneratedDate string  `json:"generated_date"`
	Status        string  `json:"status"`
	PaidDate      *string `json:"paid_date,omitempty"`
}

func ToInvoiceResponse(inv Invoice) InvoiceResponse {
	var paidDate *string
	if inv.PaidDate != nil {
		s := inv.PaidDate.Format("2006-01-02")
		paidDate = &s
	}

	return InvoiceResponse{
		ID:            inv.ID,
		StudentID:     inv.StudentID,
		Month:         inv.Month,
		Amount:        inv.Amount,
		GeneratedDate: inv.GeneratedDate.Format("2006-01-02"),
		Status:        string(inv.Status),
		PaidDate:      paidDate,
	}
}

type TransactionResponse struct {
	ID               string  `json:"id"`
	StudentID        string  `json:"student_id"`
	Date             string  `json:"date"`
	Amount           int64   `json:"amount"`
	Type             string  `json:"type"`
	Description      string  `json:"description"`
	IsReversal       bool    `json:"is_reversal"`
	RelatedInvoiceID *string `json:"related_invoice_id,omitempty"`
}

func ToTransactionResponse(tx Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               tx.ID,
		StudentID:        tx.StudentID,
		Date:             tx.Date.Format("2006-01-02"),
		Amount:           tx.Amount,
		Type:             string(tx.Type),
		Description:      tx.Description,
		IsReversal:       tx.IsReversal,
		RelatedInvoiceID: tx.RelatedInvoiceID,
	}
}

type ProvisionalLineResponse struct {
	StudentID string `json:"student_id"`
	ClassID   string `json:"class_id"`
	ClassName string `json:"class_name"`
	FeeType   string `json:"fee_type"`
	Sessions  int    `json:"sessions"`
	Amount    int64  `json:"amount"`
}

type ProvisionalTuitionResponse struct {
	Month  string                    `json:"month"`
	Lines  []ProvisionalLineResponse `json:"lines"`
	Totals map[string]int64          `json:"totals"`
	Total  int64                     `json:"total"`
}

type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

// StatementResponse is one student's ledger view. Balance is the cached
// aggregate on the student row; LedgerSum is the replayed sum of the entries.
// The two must agree; exposing both makes drift visible instead of silent.
type StatementResponse struct {
	StudentID    string                `json:"student_id"`
	StudentName  string                `json:"student_name"`
	Transactions []TransactionResponse `json:"transactions"`
	Balance      int64                 `json:"balance"`
	LedgerSum    int64                 `json:"ledger_sum"`
}

type GenerateInvoicesResponse struct {
	Month    string            `json:"month"`
	Invoices []InvoiceResponse `json:"invoices"`
	// Skipped lists students that already had a non-cancelled invoice for
	// the period and were left untouched.
	Skipped []string `json:"skipped,omitempty"`
}
