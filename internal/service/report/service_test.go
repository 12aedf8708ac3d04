package report

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
	billingService "github.com/edupoint/edupoint-backend-go/internal/service/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReportDB *database.DB

func reportTestInit(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testReportDB != nil {
		return
	}

	var err error
	testReportDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateReportTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tables := []string{"ledger_transactions", "invoices", "attendance_records", "class_students", "classes", "students"}
	for _, table := range tables {
		_, err := testReportDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

// seedBilledStudent enrolls one student in a 50000/session class with four
// countable March 2026 sessions and runs the invoice generation, leaving the
// student 200000 in debt.
func seedBilledStudent(t *testing.T, ctx context.Context) {
	t.Helper()

	studentRepo := postgresql.NewStudentRepository(testReportDB)
	classRepo := postgresql.NewClassRepository(testReportDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testReportDB)

	st, err := studentRepo.Create(ctx, student.Student{
		ID:       "HS-01",
		FullName: "Nguyen Van A",
		Status:   student.StatusActive,
	})
	require.NoError(t, err)

	c, err := classRepo.Create(ctx, class.Class{
		Name: "Guitar",
		Fee:  class.Fee{Type: class.FeePerSession, Amount: 50000},
	})
	require.NoError(t, err)
	require.NoError(t, classRepo.EnrollStudent(ctx, c.ID, st.ID))

	var records []attendance.Record
	for _, day := range []int{2, 4, 9, 11} {
		records = append(records, attendance.Record{
			ClassID:   c.ID,
			StudentID: st.ID,
			Date:      time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
			Status:    attendance.StatusPresent,
		})
	}
	require.NoError(t, attendanceRepo.UpsertBatch(ctx, records))

	billingSvc := billingService.NewBillingService(
		testReportDB,
		postgresql.NewInvoiceRepository(testReportDB),
		postgresql.NewLedgerRepository(testReportDB),
		studentRepo, classRepo, attendanceRepo,
	)
	run, err := billingSvc.GenerateInvoices(ctx, billing.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)
	require.Len(t, run.Invoices, 1)
}

func TestReportService_AfterInvoiceRun(t *testing.T) {
	ctx := context.Background()
	reportTestInit(t)
	truncateReportTables(t, ctx)
	seedBilledStudent(t, ctx)

	svc := NewReportService(postgresql.NewReportRepository(testReportDB))

	debtors, err := svc.OutstandingBalances(ctx, 0)
	require.NoError(t, err)
	require.Len(t, debtors, 1)
	assert.Equal(t, "HS-01", debtors[0].StudentID)
	assert.Equal(t, "Nguyen Van A", debtors[0].StudentName)
	assert.Equal(t, int64(-200000), debtors[0].Balance)

	revenue, err := svc.RevenueSummary(ctx, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, int64(200000), revenue.TuitionBilled)
	assert.Equal(t, 1, revenue.InvoiceCount)
	assert.Equal(t, 1, revenue.UnpaidCount)
	assert.Equal(t, int64(0), revenue.CollectedPayments)

	counts, err := svc.DashboardCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.ActiveStudents)
	assert.Equal(t, int64(1), counts.UnpaidInvoices)
	assert.Equal(t, int64(200000), counts.TotalReceivable)
}
