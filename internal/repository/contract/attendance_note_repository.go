package contract

import (
	"context"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/repository/specification"
)

type AttendanceNoteRepository interface {
	Create(ctx context.Context, note *entity.AttendanceNote) error
	Update(ctx context.Context, note *entity.AttendanceNote) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AttendanceNote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AttendanceNote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
