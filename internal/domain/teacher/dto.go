package teacher

import "github.com/edupoint/edupoint-backend-go/internal/pkg/validator"

type CreateTeacherRequest struct {
	FullName   string  `json:"full_name"`
	SalaryType string  `json:"salary_type"`
	BaseSalary int64   `json:"base_salary"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

func (r *CreateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsInSlice(r.SalaryType, []string{string(SalaryMonthly), string(SalaryPerSession)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be MONTHLY or PER_SESSION",
		})
	}

	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTeacherRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name"`
	Status     *string `json:"status"`
	SalaryType *string `json:"salary_type"`
	BaseSalary *int64  `json:"base_salary"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

func (r *UpdateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or INACTIVE",
		})
	}

	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, []string{string(SalaryMonthly), string(SalaryPerSession)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be MONTHLY or PER_SESSION",
		})
	}

	if r.BaseSalary != nil && *r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeacherResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Status     string  `json:"status"`
	SalaryType string  `json:"salary_type"`
	BaseSalary int64   `json:"base_salary"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
}

func ToTeacherResponse(t Teacher) TeacherResponse {
	return TeacherResponse{
		ID:         t.ID,
		FullName:   t.FullName,
		Status:     string(t.Status),
		SalaryType: string(t.SalaryType),
		BaseSalary: t.BaseSalary,
		Phone:      t.Phone,
		Email:      t.Email,
	}
}
