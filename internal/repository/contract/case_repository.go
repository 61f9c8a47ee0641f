package contract

import (
	"context"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/repository/specification"
)

type CaseRepository interface {
	Create(ctx context.Context, c *entity.Case) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error)
}
