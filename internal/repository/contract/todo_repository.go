package contract

import (
	"context"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	CreateMany(ctx context.Context, todos []*entity.Todo) error
	Update(ctx context.Context, todo *entity.Todo) error
	Delete(ctx context.Context, ownerId, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Todo, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Todo, error)
}
