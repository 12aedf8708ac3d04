package student

import "github.com/edupoint/edupoint-backend-go/internal/pkg/validator"

type StudentFilter struct {
	Status *string
	Search *string
	Page   int
	Limit  int
}

type CreateStudentRequest struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	GuardianName *string `json:"guardian_name"`
	Note         *string `json:"note"`
}

func (r *CreateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStudentCode(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be 2-20 chars of A-Z, 0-9 and dashes",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStudentRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name"`
	Status       *string `json:"status"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	GuardianName *string `json:"guardian_name"`
	Note         *string `json:"note"`
}

func (r *UpdateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or INACTIVE",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StudentResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Status       string  `json:"status"`
	Balance      int64   `json:"balance"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	GuardianName *string `json:"guardian_name,omitempty"`
	Note         *string `json:"note,omitempty"`
}

func ToStudentResponse(s Student) StudentResponse {
	return StudentResponse{
		ID:           s.ID,
		FullName:     s.FullName,
		Status:       string(s.Status),
		Balance:      s.Balance,
		Phone:        s.Phone,
		Email:        s.Email,
		GuardianName: s.GuardianName,
		Note:         s.Note,
	}
}

type ListStudentsResponse struct {
	Students []StudentResponse `json:"students"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
