package class

import "context"

type ClassRepository interface {
	Create(ctx context.Context, c Class) (Class, error)
	GetByID(ctx context.Context, id string) (Class, error)
	// List returns all classes with their enrollment and assignment sets
	// loaded. The engine's billing and payroll runs iterate this.
	List(ctx context.Context) ([]Class, error)
	Update(ctx context.Context, c Class) error
	Delete(ctx context.Context, id string) error

	EnrollStudent(ctx context.Context, classID, studentID string) error
	UnenrollStudent(ctx context.Context, classID, studentID string) error
	AssignTeacher(ctx context.Context, classID, teacherID string) error
	UnassignTeacher(ctx context.Context, classID, teacherID string) error
}
