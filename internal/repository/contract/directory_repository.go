package contract

import (
	"context"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/repository/specification"
)

type DirectoryRepository interface {
	Create(ctx context.Context, item *entity.DirectoryItem) error
	Delete(ctx context.Context, specs ...specification.Specification) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DirectoryItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DirectoryItem, error)
}
