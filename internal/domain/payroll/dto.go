package payroll

import "github.com/edupoint/edupoint-backend-go/internal/pkg/validator"

type GeneratePayrollsRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayrollsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID             string `json:"id"`
	TeacherID      string `json:"teacher_id"`
	TeacherName    string `json:"teacher_name"`
	Month          string `json:"month"`
	SessionsTaught int    `json:"sessions_taught"`
	BaseSalary     int64  `json:"base_salary"`
	TotalSalary    int64  `json:"total_salary"`
}

func ToPayrollResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:             p.ID,
		TeacherID:      p.TeacherID,
		TeacherName:    p.TeacherName,
		Month:          p.Month,
		SessionsTaught: p.SessionsTaught,
		BaseSalary:     p.BaseSalary,
		TotalSalary:    p.TotalSalary,
	}
}
