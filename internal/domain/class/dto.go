package class

import "github.com/edupoint/edupoint-backend-go/internal/pkg/validator"

type ScheduleSlotRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CreateClassRequest struct {
	Name      string                `json:"name"`
	FeeType   string                `json:"fee_type"`
	FeeAmount int64                 `json:"fee_amount"`
	Schedule  []ScheduleSlotRequest `json:"schedule"`
}

func (r *CreateClassRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.FeeType, []string{string(FeeMonthly), string(FeePerSession), string(FeePerCourse)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "fee_type",
			Message: "fee_type must be MONTHLY, PER_SESSION or PER_COURSE",
		})
	}

	if r.FeeAmount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fee_amount",
			Message: "fee_amount must not be negative",
		})
	}

	for _, slot := range r.Schedule {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "schedule",
				Message: "day_of_week must be between 0 and 6",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClassRequest struct {
	ID        string                 `json:"-"`
	Name      *string                `json:"name"`
	FeeType   *string                `json:"fee_type"`
	FeeAmount *int64                 `json:"fee_amount"`
	Schedule  *[]ScheduleSlotRequest `json:"schedule"`
}

func (r *UpdateClassRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.FeeType != nil && !validator.IsInSlice(*r.FeeType, []string{string(FeeMonthly), string(FeePerSession), string(FeePerCourse)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "fee_type",
			Message: "fee_type must be MONTHLY, PER_SESSION or PER_COURSE",
		})
	}

	if r.FeeAmount != nil && *r.FeeAmount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fee_amount",
			Message: "fee_amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClassResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	FeeType    string                `json:"fee_type"`
	FeeAmount  int64                 `json:"fee_amount"`
	StudentIDs []string              `json:"student_ids"`
	TeacherIDs []string              `json:"teacher_ids"`
	Schedule   []ScheduleSlotRequest `json:"schedule"`
}

func ToClassResponse(c Class) ClassResponse {
	schedule := make([]ScheduleSlotRequest, 0, len(c.Schedule))
	for _, slot := range c.Schedule {
		schedule = append(schedule, ScheduleSlotRequest{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return ClassResponse{
		ID:         c.ID,
		Name:       c.Name,
		FeeType:    string(c.Fee.Type),
		FeeAmount:  c.Fee.Amount,
		StudentIDs: c.StudentIDs,
		TeacherIDs: c.TeacherIDs,
		Schedule:   schedule,
	}
}
