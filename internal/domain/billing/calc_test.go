package billing

import (
	"testing"

	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/stretchr/testify/assert"
)

func monthlyClass(id, name string, amount int64, students ...string) class.Class {
	return class.Class{
		ID:         id,
		Name:       name,
		Fee:        class.Fee{Type: class.FeeMonthly, Amount: amount},
		StudentIDs: students,
	}
}

func perSessionClass(id, name string, rate int64, students ...string) class.Class {
	return class.Class{
		ID:         id,
		Name:       name,
		Fee:        class.Fee{Type: class.FeePerSession, Amount: rate},
		StudentIDs: students,
	}
}

func TestComputeProvisional_PerSessionMultipliesCount(t *testing.T) {
	t.Parallel()

	// 3 PRESENT + 1 LATE = 4 countable sessions; ABSENT never reaches the
	// count. 4 x 50000 = 200000.
	classes := []class.Class{perSessionClass("c1", "Guitar", 50000, "HS-01")}
	active := map[string]bool{"HS-01": true}
	sessions := map[string]map[string]int{"c1": {"HS-01": 4}}

	lines := ComputeProvisional(classes, active, sessions)

	assert.Len(t, lines, 1)
	assert.Equal(t, int64(200000), lines[0].Amount)
	assert.Equal(t, 4, lines[0].Sessions)
}

func TestComputeProvisional_MonthlyGatedOnAttendance(t *testing.T) {
	t.Parallel()

	classes := []class.Class{monthlyClass("c1", "Math", 300000, "HS-01", "HS-02")}
	active := map[string]bool{"HS-01": true, "HS-02": true}

	// HS-01 attended once, HS-02 not at all
	sessions := map[string]map[string]int{"c1": {"HS-01": 1}}

	lines := ComputeProvisional(classes, active, sessions)

	assert.Len(t, lines, 1)
	assert.Equal(t, "HS-01", lines[0].StudentID)
	assert.Equal(t, int64(300000), lines[0].Amount)
}

func TestComputeProvisional_MonthlyNeverProrated(t *testing.T) {
	t.Parallel()

	classes := []class.Class{monthlyClass("c1", "Math", 300000, "HS-01")}
	active := map[string]bool{"HS-01": true}

	for _, count := range []int{1, 5, 30} {
		sessions := map[string]map[string]int{"c1": {"HS-01": count}}
		lines := ComputeProvisional(classes, active, sessions)
		assert.Equal(t, int64(300000), lines[0].Amount, "count=%d", count)
	}
}

func TestComputeProvisional_SkipsInactiveStudents(t *testing.T) {
	t.Parallel()

	classes := []class.Class{monthlyClass("c1", "Math", 300000, "HS-01")}
	active := map[string]bool{"HS-01": false}
	sessions := map[string]map[string]int{"c1": {"HS-01": 3}}

	assert.Empty(t, ComputeProvisional(classes, active, sessions))
}

func TestComputeProvisional_SkipsPerCourseClasses(t *testing.T) {
	t.Parallel()

	classes := []class.Class{{
		ID:         "c1",
		Name:       "Workshop",
		Fee:        class.Fee{Type: class.FeePerCourse, Amount: 900000},
		StudentIDs: []string{"HS-01"},
	}}
	active := map[string]bool{"HS-01": true}
	sessions := map[string]map[string]int{"c1": {"HS-01": 3}}

	assert.Empty(t, ComputeProvisional(classes, active, sessions))
}

func TestComputeProvisional_ZeroFeeProducesNoLine(t *testing.T) {
	t.Parallel()

	classes := []class.Class{monthlyClass("c1", "Free club", 0, "HS-01")}
	active := map[string]bool{"HS-01": true}
	sessions := map[string]map[string]int{"c1": {"HS-01": 2}}

	assert.Empty(t, ComputeProvisional(classes, active, sessions))
}

func TestTotalsByStudent_SumsAcrossClasses(t *testing.T) {
	t.Parallel()

	classes := []class.Class{
		monthlyClass("c1", "Math", 300000, "HS-01"),
		perSessionClass("c2", "Guitar", 50000, "HS-01", "HS-02"),
	}
	active := map[string]bool{"HS-01": true, "HS-02": true}
	sessions := map[string]map[string]int{
		"c1": {"HS-01": 2},
		"c2": {"HS-01": 4, "HS-02": 1},
	}

	totals := TotalsByStudent(ComputeProvisional(classes, active, sessions))

	assert.Equal(t, int64(500000), totals["HS-01"])
	assert.Equal(t, int64(50000), totals["HS-02"])
}
