package billing

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/billing"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBillingDB *database.DB

// billingTestInit connects to the test database; tests are skipped when
// TEST_DATABASE_URL is not set.
func billingTestInit(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testBillingDB != nil {
		return
	}

	var err error
	testBillingDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateBillingTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tables := []string{"ledger_transactions", "invoices", "attendance_records", "class_students", "classes", "students"}
	for _, table := range tables {
		_, err := testBillingDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

type billingTestEnv struct {
	svc            billing.BillingService
	studentRepo    student.StudentRepository
	classRepo      class.ClassRepository
	attendanceRepo attendance.AttendanceRepository
	ledgerRepo     billing.LedgerRepository
}

func newBillingTestEnv(t *testing.T) billingTestEnv {
	t.Helper()

	invoiceRepo := postgresql.NewInvoiceRepository(testBillingDB)
	ledgerRepo := postgresql.NewLedgerRepository(testBillingDB)
	studentRepo := postgresql.NewStudentRepository(testBillingDB)
	classRepo := postgresql.NewClassRepository(testBillingDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testBillingDB)

	return billingTestEnv{
		svc:            NewBillingService(testBillingDB, invoiceRepo, ledgerRepo, studentRepo, classRepo, attendanceRepo),
		studentRepo:    studentRepo,
		classRepo:      classRepo,
		attendanceRepo: attendanceRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// seedGuitarClass creates one active student enrolled in a 50000/session
// class with 4 countable and 2 absent attendance rows in March 2026.
func seedGuitarClass(t *testing.T, ctx context.Context, env billingTestEnv) (studentID string) {
	t.Helper()

	st, err := env.studentRepo.Create(ctx, student.Student{
		ID:       "HS-01",
		FullName: "Nguyen Van A",
		Status:   student.StatusActive,
	})
	require.NoError(t, err)

	c, err := env.classRepo.Create(ctx, class.Class{
		Name: "Guitar",
		Fee:  class.Fee{Type: class.FeePerSession, Amount: 50000},
	})
	require.NoError(t, err)
	require.NoError(t, env.classRepo.EnrollStudent(ctx, c.ID, st.ID))

	days := []struct {
		day    int
		status attendance.Status
	}{
		{2, attendance.StatusPresent},
		{4, attendance.StatusPresent},
		{9, attendance.StatusPresent},
		{11, attendance.StatusLate},
		{16, attendance.StatusAbsent},
		{18, attendance.StatusAbsent},
	}
	var records []attendance.Record
	for _, d := range days {
		records = append(records, attendance.Record{
			ClassID:   c.ID,
			StudentID: st.ID,
			Date:      time.Date(2026, 3, d.day, 0, 0, 0, 0, time.UTC),
			Status:    d.status,
		})
	}
	require.NoError(t, env.attendanceRepo.UpsertBatch(ctx, records))

	return st.ID
}

func TestBillingService_InvoiceLifecycle(t *testing.T) {
	ctx := context.Background()
	billingTestInit(t)
	truncateBillingTables(t, ctx)
	env := newBillingTestEnv(t)

	studentID := seedGuitarClass(t, ctx, env)
	period := billing.PeriodRequest{Month: 3, Year: 2026}

	// preview: 4 countable sessions x 50000
	preview, err := env.svc.ProvisionalTuition(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), preview.Totals[studentID])

	// run: one invoice, one INVOICE ledger entry, balance goes negative
	run, err := env.svc.GenerateInvoices(ctx, period)
	require.NoError(t, err)
	require.Len(t, run.Invoices, 1)
	assert.Equal(t, int64(200000), run.Invoices[0].Amount)
	assert.Empty(t, run.Skipped)

	st, err := env.studentRepo.GetByID(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(-200000), st.Balance)

	// second run for the same period skips the student instead of
	// double-billing
	rerun, err := env.svc.GenerateInvoices(ctx, period)
	require.NoError(t, err)
	assert.Empty(t, rerun.Invoices)
	assert.Equal(t, []string{studentID}, rerun.Skipped)

	// payment brings the balance back to zero
	_, err = env.svc.RecordTransaction(ctx, billing.RecordTransactionRequest{
		StudentID:   studentID,
		Amount:      200000,
		Date:        "2026-03-20",
		Description: "Cash payment",
		Kind:        "PAYMENT",
	})
	require.NoError(t, err)

	st, err = env.studentRepo.GetByID(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.Balance)

	// cancellation flips the invoice and writes a flagged reversal credit
	cancelled, err := env.svc.CancelInvoice(ctx, run.Invoices[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)

	_, err = env.svc.CancelInvoice(ctx, run.Invoices[0].ID)
	assert.ErrorIs(t, err, billing.ErrInvoiceAlreadyCancelled)

	st, err = env.studentRepo.GetByID(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), st.Balance)

	statement, err := env.svc.StudentStatement(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, st.Balance, statement.LedgerSum, "cached balance must equal the replayed ledger")

	var reversal *billing.TransactionResponse
	for i, tx := range statement.Transactions {
		if tx.IsReversal {
			reversal = &statement.Transactions[i]
		}
	}
	require.NotNil(t, reversal)
	assert.Equal(t, "ADJUSTMENT_CREDIT", reversal.Type)
	assert.Equal(t, int64(200000), reversal.Amount)

	// reversals are frozen
	err = env.svc.DeleteTransaction(ctx, reversal.ID)
	assert.ErrorIs(t, err, billing.ErrReversalTransactionEdit)
}

func TestBillingService_TransactionEditGuards(t *testing.T) {
	ctx := context.Background()
	billingTestInit(t)
	truncateBillingTables(t, ctx)
	env := newBillingTestEnv(t)

	studentID := seedGuitarClass(t, ctx, env)

	run, err := env.svc.GenerateInvoices(ctx, billing.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)
	require.Len(t, run.Invoices, 1)

	statement, err := env.svc.StudentStatement(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, statement.Transactions, 1)
	invoiceTx := statement.Transactions[0]

	// INVOICE entries only change through cancellation
	newAmount := int64(100000)
	_, err = env.svc.UpdateTransaction(ctx, billing.UpdateTransactionRequest{ID: invoiceTx.ID, Amount: &newAmount})
	assert.ErrorIs(t, err, billing.ErrInvoiceTransactionEdit)

	err = env.svc.DeleteTransaction(ctx, invoiceTx.ID)
	assert.ErrorIs(t, err, billing.ErrInvoiceTransactionEdit)

	// manual entries move the balance by new minus old
	payment, err := env.svc.RecordTransaction(ctx, billing.RecordTransactionRequest{
		StudentID:   studentID,
		Amount:      50000,
		Date:        "2026-03-21",
		Description: "Partial payment",
		Kind:        "PAYMENT",
	})
	require.NoError(t, err)

	updatedAmount := int64(80000)
	_, err = env.svc.UpdateTransaction(ctx, billing.UpdateTransactionRequest{ID: payment.ID, Amount: &updatedAmount})
	require.NoError(t, err)

	st, err := env.studentRepo.GetByID(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(-200000+80000), st.Balance)

	// deleting a manual entry rolls its effect back
	require.NoError(t, env.svc.DeleteTransaction(ctx, payment.ID))
	st, err = env.studentRepo.GetByID(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(-200000), st.Balance)
}

func TestBillingService_ClearAllTransactions(t *testing.T) {
	ctx := context.Background()
	billingTestInit(t)
	truncateBillingTables(t, ctx)
	env := newBillingTestEnv(t)

	studentID := seedGuitarClass(t, ctx, env)

	_, err := env.svc.GenerateInvoices(ctx, billing.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	require.NoError(t, env.svc.ClearAllTransactions(ctx))

	st, err := env.studentRepo.GetByID(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.Balance)

	invoices, err := env.svc.ListInvoices(ctx, billing.InvoiceFilter{})
	require.NoError(t, err)
	assert.Empty(t, invoices.Invoices)

	txs, err := env.svc.ListTransactions(ctx, billing.LedgerFilter{})
	require.NoError(t, err)
	assert.Empty(t, txs.Transactions)
}
