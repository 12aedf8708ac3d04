package payroll

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/payroll"
	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayrollDB *database.DB

func payrollTestInit(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testPayrollDB != nil {
		return
	}

	var err error
	testPayrollDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncatePayrollTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tables := []string{"payrolls", "attendance_records", "class_students", "class_teachers", "classes", "teachers", "students"}
	for _, table := range tables {
		_, err := testPayrollDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func TestPayrollService_GenerateReplacesMonth(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	payrollRepo := postgresql.NewPayrollRepository(testPayrollDB)
	teacherRepo := postgresql.NewTeacherRepository(testPayrollDB)
	classRepo := postgresql.NewClassRepository(testPayrollDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testPayrollDB)
	studentRepo := postgresql.NewStudentRepository(testPayrollDB)

	svc := NewPayrollService(testPayrollDB, payrollRepo, teacherRepo, classRepo, attendanceRepo, payroll.CountAttendanceRows)

	fixed, err := teacherRepo.Create(ctx, teacher.Teacher{
		FullName:   "An",
		Status:     teacher.StatusActive,
		SalaryType: teacher.SalaryMonthly,
		BaseSalary: 12000000,
	})
	require.NoError(t, err)

	hourly, err := teacherRepo.Create(ctx, teacher.Teacher{
		FullName:   "Binh",
		Status:     teacher.StatusActive,
		SalaryType: teacher.SalaryPerSession,
		BaseSalary: 200000,
	})
	require.NoError(t, err)

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
	require.NoError(t, classRepo.AssignTeacher(ctx, c.ID, hourly.ID))

	var records []attendance.Record
	for _, day := range []int{2, 4, 9} {
		records = append(records, attendance.Record{
			ClassID:   c.ID,
			StudentID: st.ID,
			Date:      time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
			Status:    attendance.StatusPresent,
		})
	}
	require.NoError(t, attendanceRepo.UpsertBatch(ctx, records))

	rows, err := svc.GeneratePayrolls(ctx, payroll.GeneratePayrollsRequest{Month: 3, Year: 2026})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byTeacher := map[string]payroll.PayrollResponse{}
	for _, row := range rows {
		byTeacher[row.TeacherID] = row
	}
	assert.Equal(t, int64(12000000), byTeacher[fixed.ID].TotalSalary)
	assert.Equal(t, 0, byTeacher[fixed.ID].SessionsTaught)
	assert.Equal(t, 3, byTeacher[hourly.ID].SessionsTaught)
	assert.Equal(t, int64(600000), byTeacher[hourly.ID].TotalSalary)

	// rerun is a full replace, not an append
	rows, err = svc.GeneratePayrolls(ctx, payroll.GeneratePayrollsRequest{Month: 3, Year: 2026})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	listed, err := svc.ListForMonth(ctx, "2026-03")
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
