package attendance

import (
	"strconv"

	"github.com/edupoint/edupoint-backend-go/internal/pkg/validator"
)

type RecordRequest struct {
	ClassID   string `json:"class_id"`
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

type SetAttendanceRequest struct {
	Records []RecordRequest `json:"records"`
}

var validStatuses = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
	string(StatusUnmarked),
}

func (r *SetAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "at least one record is required",
		})
	}

	for i, rec := range r.Records {
		prefix := "records[" + strconv.Itoa(i) + "]"
		if validator.IsEmpty(rec.ClassID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".class_id",
				Message: "class_id is required",
			})
		}
		if validator.IsEmpty(rec.StudentID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".student_id",
				Message: "student_id is required",
			})
		}
		if _, ok := validator.IsValidDate(rec.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".date",
				Message: "date must be YYYY-MM-DD",
			})
		}
		if !validator.IsInSlice(rec.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".status",
				Message: "status must be PRESENT, LATE, ABSENT or UNMARKED",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID        string `json:"id"`
	ClassID   string `json:"class_id"`
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

func ToRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:        rec.ID,
		ClassID:   rec.ClassID,
		StudentID: rec.StudentID,
		Date:      rec.Date.Format("2006-01-02"),
		Status:    string(rec.Status),
	}
}
