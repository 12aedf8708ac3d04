package catalog

import (
	"context"

	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
)

type ClassServiceImpl struct {
	db          *database.DB
	classRepo   class.ClassRepository
	studentRepo student.StudentRepository
	teacherRepo teacher.TeacherRepository
}

func NewClassService(
	db *database.DB,
	classRepo class.ClassRepository,
	studentRepo student.StudentRepository,
	teacherRepo teacher.TeacherRepository,
) class.ClassService {
	return &ClassServiceImpl{
		db:          db,
		classRepo:   classRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
	}
}

func slotsFromRequest(slots []class.ScheduleSlotRequest) []class.ScheduleSlot {
	schedule := make([]class.ScheduleSlot, 0, len(slots))
	for _, slot := range slots {
		schedule = append(schedule, class.ScheduleSlot{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	return schedule
}

// CreateClass implements class.ClassService.
func (s *ClassServiceImpl) CreateClass(ctx context.Context, req class.CreateClassRequest) (class.ClassResponse, error) {
	if err := req.Validate(); err != nil {
		return class.ClassResponse{}, err
	}

	// class row and schedule slots land together or not at all
	var created class.Class
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.classRepo.Create(txCtx, class.Class{
			Name: req.Name,
			Fee: class.Fee{
				Type:   class.FeeType(req.FeeType),
				Amount: req.FeeAmount,
			},
			Schedule: slotsFromRequest(req.Schedule),
		})
		return err
	})
	if err != nil {
		return class.ClassResponse{}, err
	}

	return class.ToClassResponse(created), nil
}

// GetClass implements class.ClassService.
func (s *ClassServiceImpl) GetClass(ctx context.Context, id string) (class.ClassResponse, error) {
	c, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return class.ClassResponse{}, err
	}
	return class.ToClassResponse(c), nil
}

// ListClasses implements class.ClassService.
func (s *ClassServiceImpl) ListClasses(ctx context.Context) ([]class.ClassResponse, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]class.ClassResponse, 0, len(classes))
	for _, c := range classes {
		resp = append(resp, class.ToClassResponse(c))
	}
	return resp, nil
}

// UpdateClass implements class.ClassService.
func (s *ClassServiceImpl) UpdateClass(ctx context.Context, req class.UpdateClassRequest) (class.ClassResponse, error) {
	if err := req.Validate(); err != nil {
		return class.ClassResponse{}, err
	}

	c, err := s.classRepo.GetByID(ctx, req.ID)
	if err != nil {
		return class.ClassResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.FeeType != nil {
		c.Fee.Type = class.FeeType(*req.FeeType)
	}
	if req.FeeAmount != nil {
		c.Fee.Amount = *req.FeeAmount
	}
	if req.Schedule != nil {
		c.Schedule = slotsFromRequest(*req.Schedule)
	}

	// the schedule is replaced wholesale; keep the delete and re-insert atomic
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.classRepo.Update(txCtx, c)
	})
	if err != nil {
		return class.ClassResponse{}, err
	}

	return class.ToClassResponse(c), nil
}

// DeleteClass implements class.ClassService.
func (s *ClassServiceImpl) DeleteClass(ctx context.Context, id string) error {
	return s.classRepo.Delete(ctx, id)
}

// EnrollStudent implements class.ClassService.
func (s *ClassServiceImpl) EnrollStudent(ctx context.Context, classID, studentID string) error {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return err
	}
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return err
	}
	return s.classRepo.EnrollStudent(ctx, classID, studentID)
}

// UnenrollStudent implements class.ClassService.
func (s *ClassServiceImpl) UnenrollStudent(ctx context.Context, classID, studentID string) error {
	return s.classRepo.UnenrollStudent(ctx, classID, studentID)
}

// AssignTeacher implements class.ClassService.
func (s *ClassServiceImpl) AssignTeacher(ctx context.Context, classID, teacherID string) error {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return err
	}
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		return err
	}
	return s.classRepo.AssignTeacher(ctx, classID, teacherID)
}

// UnassignTeacher implements class.ClassService.
func (s *ClassServiceImpl) UnassignTeacher(ctx context.Context, classID, teacherID string) error {
	return s.classRepo.UnassignTeacher(ctx, classID, teacherID)
}
