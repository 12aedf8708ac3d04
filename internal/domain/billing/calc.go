package billing

import (
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
)

// ProvisionalLine is one class's contribution to a student's provisional
// (accrued, not yet invoiced) tuition for a period.
type ProvisionalLine struct {
	StudentID string
	ClassID   string
	ClassName string
	FeeType   class.FeeType
	Sessions  int
	Amount    int64
}

// ComputeProvisional derives the provisional tuition projection for a
// period. It is a pure read: nothing is persisted.
//
// sessions maps classID -> studentID -> countable (PRESENT/LATE) session
// count in the period; active reports whether a student is ACTIVE.
//
// MONTHLY fees are gated on attendance: an enrolled student with zero
// countable records that month contributes nothing, one or more contributes
// exactly the fee amount, never prorated. PER_SESSION is count times
// amount. PER_COURSE classes are skipped here; they are invoiced out of
// band through manual adjustments.
func ComputeProvisional(classes []class.Class, active map[string]bool, sessions map[string]map[string]int) []ProvisionalLine {
	var lines []ProvisionalLine

	for _, c := range classes {
		if c.Fee.Type == class.FeePerCourse {
			continue
		}

		for _, studentID := range c.StudentIDs {
			if !active[studentID] {
				continue
			}

			count := sessions[c.ID][studentID]
			if count == 0 {
				continue
			}

			amount := c.Fee.Amount
			if c.Fee.Type == class.FeePerSession {
				amount = int64(count) * c.Fee.Amount
			}
			if amount == 0 {
				continue
			}

			lines = append(lines, ProvisionalLine{
				StudentID: studentID,
				ClassID:   c.ID,
				ClassName: c.Name,
				FeeType:   c.Fee.Type,
				Sessions:  count,
				Amount:    amount,
			})
		}
	}

	return lines
}

// TotalsByStudent folds provisional lines into per-student sums.
func TotalsByStudent(lines []ProvisionalLine) map[string]int64 {
	totals := make(map[string]int64)
	for _, line := range lines {
		totals[line.StudentID] += line.Amount
	}
	return totals
}
