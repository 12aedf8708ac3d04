package class

import "context"

// ClassService defines business logic for class management, including
// enrollment and teacher assignment.
type ClassService interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (ClassResponse, error)
	GetClass(ctx context.Context, id string) (ClassResponse, error)
	ListClasses(ctx context.Context) ([]ClassResponse, error)
	UpdateClass(ctx context.Context, req UpdateClassRequest) (ClassResponse, error)
	DeleteClass(ctx context.Context, id string) error

	EnrollStudent(ctx context.Context, classID, studentID string) error
	UnenrollStudent(ctx context.Context, classID, studentID string) error
	AssignTeacher(ctx context.Context, classID, teacherID string) error
	UnassignTeacher(ctx context.Context, classID, teacherID string) error
}
