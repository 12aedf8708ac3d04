package payroll

import (
	"testing"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePayrolls_MonthlyFlat(t *testing.T) {
	t.Parallel()

	teachers := []teacher.Teacher{{
		ID:         "t1",
		FullName:   "An",
		SalaryType: teacher.SalaryMonthly,
		BaseSalary: 12000000,
	}}

	// attendance volume must not matter for fixed salaries
	classes := []class.Class{{ID: "c1", TeacherIDs: []string{"t1"}}}
	counts := []attendance.ClassSessionCount{{ClassID: "c1", Rows: 40, DistinctDays: 8}}

	rows := ComputePayrolls("2026-03", teachers, classes, counts, CountAttendanceRows)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].SessionsTaught)
	assert.Equal(t, int64(12000000), rows[0].TotalSalary)
	assert.Equal(t, "2026-03", rows[0].Month)
}

func TestComputePayrolls_PerSessionByAttendanceRows(t *testing.T) {
	t.Parallel()

	teachers := []teacher.Teacher{{
		ID:         "t1",
		FullName:   "Binh",
		SalaryType: teacher.SalaryPerSession,
		BaseSalary: 200000,
	}}
	classes := []class.Class{
		{ID: "c1", TeacherIDs: []string{"t1"}},
		{ID: "c2", TeacherIDs: []string{"t1"}},
	}
	counts := []attendance.ClassSessionCount{
		{ClassID: "c1", Rows: 10, DistinctDays: 2},
		{ClassID: "c2", Rows: 5, DistinctDays: 5},
	}

	rows := ComputePayrolls("2026-03", teachers, classes, counts, CountAttendanceRows)

	require.Len(t, rows, 1)
	assert.Equal(t, 15, rows[0].SessionsTaught)
	assert.Equal(t, int64(15*200000), rows[0].TotalSalary)
}

func TestComputePayrolls_PerSessionByClassDays(t *testing.T) {
	t.Parallel()

	teachers := []teacher.Teacher{{
		ID:         "t1",
		FullName:   "Binh",
		SalaryType: teacher.SalaryPerSession,
		BaseSalary: 200000,
	}}
	classes := []class.Class{
		{ID: "c1", TeacherIDs: []string{"t1"}},
		{ID: "c2", TeacherIDs: []string{"t1"}},
	}
	counts := []attendance.ClassSessionCount{
		{ClassID: "c1", Rows: 10, DistinctDays: 2},
		{ClassID: "c2", Rows: 5, DistinctDays: 5},
	}

	rows := ComputePayrolls("2026-03", teachers, classes, counts, CountClassDays)

	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].SessionsTaught)
	assert.Equal(t, int64(7*200000), rows[0].TotalSalary)
}

func TestComputePayrolls_PerSessionNoAttendance(t *testing.T) {
	t.Parallel()

	teachers := []teacher.Teacher{{
		ID:         "t1",
		FullName:   "Chi",
		SalaryType: teacher.SalaryPerSession,
		BaseSalary: 200000,
	}}

	rows := ComputePayrolls("2026-03", teachers, nil, nil, CountAttendanceRows)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].SessionsTaught)
	assert.Equal(t, int64(0), rows[0].TotalSalary)
}

func TestComputePayrolls_OnlyAssignedClassesCount(t *testing.T) {
	t.Parallel()

	teachers := []teacher.Teacher{
		{ID: "t1", FullName: "Binh", SalaryType: teacher.SalaryPerSession, BaseSalary: 200000},
		{ID: "t2", FullName: "Dung", SalaryType: teacher.SalaryPerSession, BaseSalary: 150000},
	}
	classes := []class.Class{
		{ID: "c1", TeacherIDs: []string{"t1"}},
		{ID: "c2", TeacherIDs: []string{"t2"}},
	}
	counts := []attendance.ClassSessionCount{
		{ClassID: "c1", Rows: 8, DistinctDays: 4},
		{ClassID: "c2", Rows: 3, DistinctDays: 3},
	}

	rows := ComputePayrolls("2026-03", teachers, classes, counts, CountAttendanceRows)

	require.Len(t, rows, 2)
	byTeacher := map[string]Payroll{}
	for _, row := range rows {
		byTeacher[row.TeacherID] = row
	}
	assert.Equal(t, 8, byTeacher["t1"].SessionsTaught)
	assert.Equal(t, 3, byTeacher["t2"].SessionsTaught)
}
