package catalog

import (
	"context"

	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
)

type TeacherServiceImpl struct {
	teacherRepo teacher.TeacherRepository
}

func NewTeacherService(teacherRepo teacher.TeacherRepository) teacher.TeacherService {
	return &TeacherServiceImpl{teacherRepo: teacherRepo}
}

// CreateTeacher implements teacher.TeacherService.
func (s *TeacherServiceImpl) CreateTeacher(ctx context.Context, req teacher.CreateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	created, err := s.teacherRepo.Create(ctx, teacher.Teacher{
		FullName:   req.FullName,
		Status:     teacher.StatusActive,
		SalaryType: teacher.SalaryType(req.SalaryType),
		BaseSalary: req.BaseSalary,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return teacher.ToTeacherResponse(created), nil
}

// GetTeacher implements teacher.TeacherService.
func (s *TeacherServiceImpl) GetTeacher(ctx context.Context, id string) (teacher.TeacherResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}
	return teacher.ToTeacherResponse(t), nil
}

// ListTeachers implements teacher.TeacherService.
func (s *TeacherServiceImpl) ListTeachers(ctx context.Context, activeOnly bool) ([]teacher.TeacherResponse, error) {
	teachers, err := s.teacherRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]teacher.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		resp = append(resp, teacher.ToTeacherResponse(t))
	}
	return resp, nil
}

// UpdateTeacher implements teacher.TeacherService.
func (s *TeacherServiceImpl) UpdateTeacher(ctx context.Context, req teacher.UpdateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	t, err := s.teacherRepo.GetByID(ctx, req.ID)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	if req.FullName != nil {
		t.FullName = *req.FullName
	}
	if req.Status != nil {
		t.Status = teacher.Status(*req.Status)
	}
	if req.SalaryType != nil {
		t.SalaryType = teacher.SalaryType(*req.SalaryType)
	}
	if req.BaseSalary != nil {
		t.BaseSalary = *req.BaseSalary
	}
	if req.Phone != nil {
		t.Phone = req.Phone
	}
	if req.Email != nil {
		t.Email = req.Email
	}

	if err := s.teacherRepo.Update(ctx, t); err != nil {
		return teacher.TeacherResponse{}, err
	}

	return teacher.ToTeacherResponse(t), nil
}

// DeleteTeacher implements teacher.TeacherService.
func (s *TeacherServiceImpl) DeleteTeacher(ctx context.Context, id string) error {
	return s.teacherRepo.Delete(ctx, id)
}
