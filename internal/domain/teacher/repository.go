package teacher

import "context"

type TeacherRepository interface {
	Create(ctx context.Context, t Teacher) (Teacher, error)
	GetByID(ctx context.Context, id string) (Teacher, error)
	List(ctx context.Context, activeOnly bool) ([]Teacher, error)
	Update(ctx context.Context, t Teacher) error
	Delete(ctx context.Context, id string) error
}
