package catalog

import (
	"context"

	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
)

type StudentServiceImpl struct {
	studentRepo student.StudentRepository
}

func NewStudentService(studentRepo student.StudentRepository) student.StudentService {
	return &StudentServiceImpl{studentRepo: studentRepo}
}

// CreateStudent implements student.StudentService.
func (s *StudentServiceImpl) CreateStudent(ctx context.Context, req student.CreateStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}

	created, err := s.studentRepo.Create(ctx, student.Student{
		ID:           req.ID,
		FullName:     req.FullName,
		Status:       student.StatusActive,
		Phone:        req.Phone,
		Email:        req.Email,
		GuardianName: req.GuardianName,
		Note:         req.Note,
	})
	if err != nil {
		return student.StudentResponse{}, err
	}

	return student.ToStudentResponse(created), nil
}

// GetStudent implements student.StudentService.
func (s *StudentServiceImpl) GetStudent(ctx context.Context, id string) (student.StudentResponse, error) {
	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return student.StudentResponse{}, err
	}
	return student.ToStudentResponse(st), nil
}

// ListStudents implements student.StudentService.
func (s *StudentServiceImpl) ListStudents(ctx context.Context, filter student.StudentFilter) (student.ListStudentsResponse, error) {
	students, total, err := s.studentRepo.List(ctx, filter)
	if err != nil {
		return student.ListStudentsResponse{}, err
	}

	resp := student.ListStudentsResponse{
		Students: make([]student.StudentResponse, 0, len(students)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, st := range students {
		resp.Students = append(resp.Students, student.ToStudentResponse(st))
	}

	return resp, nil
}

// UpdateStudent implements student.StudentService.
func (s *StudentServiceImpl) UpdateStudent(ctx context.Context, req student.UpdateStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}

	st, err := s.studentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return student.StudentResponse{}, err
	}

	if req.FullName != nil {
		st.FullName = *req.FullName
	}
	if req.Status != nil {
		st.Status = student.Status(*req.Status)
	}
	if req.Phone != nil {
		st.Phone = req.Phone
	}
	if req.Email != nil {
		st.Email = req.Email
	}
	if req.GuardianName != nil {
		st.GuardianName = req.GuardianName
	}
	if req.Note != nil {
		st.Note = req.Note
	}

	if err := s.studentRepo.Update(ctx, st); err != nil {
		return student.StudentResponse{}, err
	}

	return student.ToStudentResponse(st), nil
}

// DeleteStudent implements student.StudentService.
func (s *StudentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	return s.studentRepo.Delete(ctx, id)
}
