package report

// RevenueSummary aggregates one month of money movement. Reversal credits
// written by invoice cancellation are excluded from CollectedPayments and
// NetAdjustments via the ledger's is_reversal flag.
type RevenueSummary struct {
	Month             string `json:"month"`
	TuitionBilled     int64  `json:"tuition_billed"`     // non-cancelled invoice amounts
	CollectedPayments int64  `json:"collected_payments"` // PAYMENT entries
	NetAdjustments    int64  `json:"net_adjustments"`    // credits minus debits, reversals excluded
	InvoiceCount      int    `json:"invoice_count"`
	UnpaidCount       int    `json:"unpaid_count"`
}

// OutstandingBalance is one indebted student on the debtors report.
type OutstandingBalance struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Balance     int64  `json:"balance"`
}

// DashboardCounts feeds the landing page.
type DashboardCounts struct {
	ActiveStudents  int64 `json:"active_students"`
	ActiveTeachers  int64 `json:"active_teachers"`
	Classes         int64 `json:"classes"`
	UnpaidInvoices  int64 `json:"unpaid_invoices"`
	TotalReceivable int64 `json:"total_receivable"` // sum of negative balances, sign flipped
}
