package billing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/billing"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
)

type BillingServiceImpl struct {
	db             *database.DB
	invoiceRepo    billing.InvoiceRepository
	ledgerRepo     billing.LedgerRepository
	studentRepo    student.StudentRepository
	classRepo      class.ClassRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewBillingService(
	db *database.DB,
	invoiceRepo billing.InvoiceRepository,
	ledgerRepo billing.LedgerRepository,
	studentRepo student.StudentRepository,
	classRepo class.ClassRepository,
	attendanceRepo attendance.AttendanceRepository,
) billing.BillingService {
	return &BillingServiceImpl{
		db:             db,
		invoiceRepo:    invoiceRepo,
		ledgerRepo:     ledgerRepo,
		studentRepo:    studentRepo,
		classRepo:      classRepo,
		attendanceRepo: attendanceRepo,
	}
}

// appendEntry is the single choke point for ledger writes: it creates the
// entry and moves the cached student balance by the same signed amount.
// Callers must pass a transaction context from postgresql.WithTransaction.
func (s *BillingServiceImpl) appendEntry(txCtx context.Context, tx billing.Transaction) (billing.Transaction, error) {
	created, err := s.ledgerRepo.Create(txCtx, tx)
	if err != nil {
		return billing.Transaction{}, err
	}
	if err := s.studentRepo.ApplyBalanceDelta(txCtx, tx.StudentID, tx.Amount); err != nil {
		return billing.Transaction{}, err
	}
	return created, nil
}

// projectLines gathers classes, active students and session counts and runs
// the provisional projection. Shared by ProvisionalTuition and
// GenerateInvoices so the preview and the run can never disagree.
func (s *BillingServiceImpl) projectLines(ctx context.Context, year int, month time.Month) ([]billing.ProvisionalLine, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	active := make(map[string]bool, len(students))
	for _, st := range students {
		active[st.ID] = st.Status == student.StatusActive
	}

	counts, err := s.attendanceRepo.CountSessionsForMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	sessions := make(map[string]map[string]int)
	for _, c := range counts {
		if sessions[c.ClassID] == nil {
			sessions[c.ClassID] = make(map[string]int)
		}
		sessions[c.ClassID][c.StudentID] = c.Sessions
	}

	return billing.ComputeProvisional(classes, active, sessions), nil
}

// ProvisionalTuition implements billing.BillingService.
func (s *BillingServiceImpl) ProvisionalTuition(ctx context.Context, req billing.PeriodRequest) (billing.ProvisionalTuitionResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.ProvisionalTuitionResponse{}, err
	}

	lines, err := s.projectLines(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return billing.ProvisionalTuitionResponse{}, err
	}

	resp := billing.ProvisionalTuitionResponse{
		Month:  billing.MonthLabel(req.Year, time.Month(req.Month)),
		Lines:  make([]billing.ProvisionalLineResponse, 0, len(lines)),
		Totals: billing.TotalsByStudent(lines),
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, billing.ProvisionalLineResponse{
			StudentID: line.StudentID,
			ClassID:   line.ClassID,
			ClassName: line.ClassName,
			FeeType:   string(line.FeeType),
			Sessions:  line.Sessions,
			Amount:    line.Amount,
		})
		resp.Total += line.Amount
	}

	return resp, nil
}

// GenerateInvoices implements billing.BillingService.
func (s *BillingServiceImpl) GenerateInvoices(ctx context.Context, req billing.PeriodRequest) (billing.GenerateInvoicesResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.GenerateInvoicesResponse{}, err
	}

	monthLabel := billing.MonthLabel(req.Year, time.Month(req.Month))

	lines, err := s.projectLines(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return billing.GenerateInvoicesResponse{}, err
	}
	totals := billing.TotalsByStudent(lines)

	studentIDs := make([]string, 0, len(totals))
	for id := range totals {
		studentIDs = append(studentIDs, id)
	}
	sort.Strings(studentIDs)

	resp := billing.GenerateInvoicesResponse{Month: monthLabel}
	now := time.Now().UTC().Truncate(24 * time.Hour)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, studentID := range studentIDs {
			total := totals[studentID]
			if total <= 0 {
				continue
			}

			exists, err := s.invoiceRepo.HasActiveForStudentMonth(txCtx, studentID, monthLabel)
			if err != nil {
				return err
			}
			if exists {
				resp.Skipped = append(resp.Skipped, studentID)
				continue
			}

			inv, err := s.invoiceRepo.Create(txCtx, billing.Invoice{
				StudentID:     studentID,
				Month:         monthLabel,
				Amount:        total,
				GeneratedDate: now,
				Status:        billing.InvoiceUnpaid,
			})
			if err != nil {
				return err
			}

			_, err = s.appendEntry(txCtx, billing.Transaction{
				StudentID:        studentID,
				Date:             now,
				Amount:           -total,
				Type:             billing.TxInvoice,
				Description:      fmt.Sprintf("Tuition invoice %s", monthLabel),
				RelatedInvoiceID: &inv.ID,
			})
			if err != nil {
				return err
			}

			resp.Invoices = append(resp.Invoices, billing.ToInvoiceResponse(inv))
		}
		return nil
	})
	if err != nil {
		return billing.GenerateInvoicesResponse{}, err
	}

	return resp, nil
}

// GetInvoice implements billing.BillingService.
func (s *BillingServiceImpl) GetInvoice(ctx context.Context, id string) (billing.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return billing.InvoiceResponse{}, err
	}
	return billing.ToInvoiceResponse(inv), nil
}

// ListInvoices implements billing.BillingService.
func (s *BillingServiceImpl) ListInvoices(ctx context.Context, filter billing.InvoiceFilter) (billing.ListInvoicesResponse, error) {
	invoices, total, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return billing.ListInvoicesResponse{}, err
	}

	resp := billing.ListInvoicesResponse{
		Invoices: make([]billing.InvoiceResponse, 0, len(invoices)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, billing.ToInvoiceResponse(inv))
	}

	return resp, nil
}

// UpdateInvoiceStatus implements billing.BillingService.
func (s *BillingServiceImpl) UpdateInvoiceStatus(ctx context.Context, req billing.UpdateInvoiceStatusRequest) (billing.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.InvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return billing.InvoiceResponse{}, err
	}
	if inv.Status == billing.InvoiceCancelled {
		return billing.InvoiceResponse{}, billing.ErrInvoiceCancelledStatus
	}

	status := billing.InvoiceStatus(req.Status)
	var paidDate *time.Time
	if status == billing.InvoicePaid {
		now := time.Now().UTC()
		paidDate = &now
	}

	if err := s.invoiceRepo.SetStatus(ctx, req.ID, status, paidDate); err != nil {
		return billing.InvoiceResponse{}, err
	}

	inv.Status = status
	inv.PaidDate = paidDate
	return billing.ToInvoiceResponse(inv), nil
}

// CancelInvoice implements billing.BillingService.
func (s *BillingServiceImpl) CancelInvoice(ctx context.Context, id string) (billing.InvoiceResponse, error) {
	var inv billing.Invoice

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		inv, err = s.invoiceRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if inv.Status == billing.InvoiceCancelled {
			return billing.ErrInvoiceAlreadyCancelled
		}

		if err := s.invoiceRepo.SetStatus(txCtx, id, billing.InvoiceCancelled, nil); err != nil {
			return err
		}

		_, err = s.appendEntry(txCtx, billing.Transaction{
			StudentID:        inv.StudentID,
			Date:             time.Now().UTC().Truncate(24 * time.Hour),
			Amount:           inv.Amount,
			Type:             billing.TxAdjustmentCredit,
			Description:      fmt.Sprintf("Cancelled invoice %s", inv.Month),
			IsReversal:       true,
			RelatedInvoiceID: &inv.ID,
		})
		return err
	})
	if err != nil {
		return billing.InvoiceResponse{}, err
	}

	inv.Status = billing.InvoiceCancelled
	inv.PaidDate = nil
	return billing.ToInvoiceResponse(inv), nil
}

// RecordTransaction implements billing.BillingService.
func (s *BillingServiceImpl) RecordTransaction(ctx context.Context, req billing.RecordTransactionRequest) (billing.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.TransactionResponse{}, err
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return billing.TransactionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	kind := billing.TransactionType(req.Kind)

	var created billing.Transaction
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.appendEntry(txCtx, billing.Transaction{
			StudentID:   req.StudentID,
			Date:        date,
			Amount:      billing.Delta(kind, req.Amount),
			Type:        kind,
			Description: req.Description,
		})
		return err
	})
	if err != nil {
		return billing.TransactionResponse{}, err
	}

	return billing.ToTransactionResponse(created), nil
}

// ListTransactions implements billing.BillingService.
func (s *BillingServiceImpl) ListTransactions(ctx context.Context, filter billing.LedgerFilter) (billing.ListTransactionsResponse, error) {
	txs, total, err := s.ledgerRepo.List(ctx, filter)
	if err != nil {
		return billing.ListTransactionsResponse{}, err
	}

	resp := billing.ListTransactionsResponse{
		Transactions: make([]billing.TransactionResponse, 0, len(txs)),
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, billing.ToTransactionResponse(tx))
	}

	return resp, nil
}

// editable rejects the two entry kinds that may only change through their
// owning flow: INVOICE entries via invoice cancellation, reversals never.
func editable(tx billing.Transaction) error {
	if tx.Type == billing.TxInvoice {
		return billing.ErrInvoiceTransactionEdit
	}
	if tx.IsReversal {
		return billing.ErrReversalTransactionEdit
	}
	return nil
}

// UpdateTransaction implements billing.BillingService.
func (s *BillingServiceImpl) UpdateTransaction(ctx context.Context, req billing.UpdateTransactionRequest) (billing.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.TransactionResponse{}, err
	}

	var updated billing.Transaction
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		old, err := s.ledgerRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if err := editable(old); err != nil {
			return err
		}

		updated = old
		if req.Amount != nil {
			// the request carries a magnitude; the entry's type keeps its sign
			updated.Amount = billing.Delta(old.Type, *req.Amount)
		}
		if req.Date != nil {
			d, _ := time.Parse("2006-01-02", *req.Date)
			updated.Date = d
		}
		if req.Description != nil {
			updated.Description = *req.Description
		}

		if err := s.ledgerRepo.UpdateAmount(txCtx, old.ID, updated.Amount, updated.Date, updated.Description); err != nil {
			return err
		}

		if delta := updated.Amount - old.Amount; delta != 0 {
			if err := s.studentRepo.ApplyBalanceDelta(txCtx, old.StudentID, delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return billing.TransactionResponse{}, err
	}

	return billing.ToTransactionResponse(updated), nil
}

// DeleteTransaction implements billing.BillingService.
func (s *BillingServiceImpl) DeleteTransaction(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		old, err := s.ledgerRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := editable(old); err != nil {
			return err
		}

		if err := s.ledgerRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return s.studentRepo.ApplyBalanceDelta(txCtx, old.StudentID, -old.Amount)
	})
}

// StudentStatement implements billing.BillingService.
func (s *BillingServiceImpl) StudentStatement(ctx context.Context, studentID string) (billing.StatementResponse, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return billing.StatementResponse{}, err
	}

	txs, err := s.ledgerRepo.ListForStudent(ctx, studentID)
	if err != nil {
		return billing.StatementResponse{}, err
	}

	sum, err := s.ledgerRepo.SumForStudent(ctx, studentID)
	if err != nil {
		return billing.StatementResponse{}, err
	}

	resp := billing.StatementResponse{
		StudentID:    st.ID,
		StudentName:  st.FullName,
		Transactions: make([]billing.TransactionResponse, 0, len(txs)),
		Balance:      st.Balance,
		LedgerSum:    sum,
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, billing.ToTransactionResponse(tx))
	}

	return resp, nil
}

// ClearAllTransactions implements billing.BillingService.
func (s *BillingServiceImpl) ClearAllTransactions(ctx context.Context) error {
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.ledgerRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.invoiceRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		return s.studentRepo.ResetAllBalances(txCtx)
	})
	if err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}
