package payroll

import (
	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
)

// ComputePayrolls derives one payroll row per teacher for the month.
// Pure computation; persistence is the repository's replace-for-month.
//
// MONTHLY teachers always get sessions=0 and total=base, whatever the
// attendance volume. PER_SESSION teachers get rate times the session count
// summed over their assigned classes, where mode picks the counting.
func ComputePayrolls(
	month string,
	teachers []teacher.Teacher,
	classes []class.Class,
	counts []attendance.ClassSessionCount,
	mode SessionCountMode,
) []Payroll {
	countByClass := make(map[string]attendance.ClassSessionCount, len(counts))
	for _, c := range counts {
		countByClass[c.ClassID] = c
	}

	// teacherID -> session count across assigned classes
	sessionsByTeacher := make(map[string]int)
	for _, c := range classes {
		cc, ok := countByClass[c.ID]
		if !ok {
			continue
		}
		n := cc.Rows
		if mode == CountClassDays {
			n = cc.DistinctDays
		}
		for _, teacherID := range c.TeacherIDs {
			sessionsByTeacher[teacherID] += n
		}
	}

	rows := make([]Payroll, 0, len(teachers))
	for _, t := range teachers {
		row := Payroll{
			TeacherID:   t.ID,
			TeacherName: t.FullName,
			Month:       month,
			BaseSalary:  t.BaseSalary,
		}

		switch t.SalaryType {
		case teacher.SalaryPerSession:
			row.SessionsTaught = sessionsByTeacher[t.ID]
			row.TotalSalary = int64(row.SessionsTaught) * t.BaseSalary
		default: // MONTHLY
			row.SessionsTaught = 0
			row.TotalSalary = t.BaseSalary
		}

		rows = append(rows, row)
	}

	return rows
}
