package contract

import (
	"context"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ExpenseRepository interface {
	CreateMany(ctx context.Context, lines []*entity.ExpenseLine) error
	// DeleteByNote removes every line belonging to the note; the expense
	// set is replace-on-save, so this always precedes a reinsert.
	DeleteByNote(ctx context.Context, ownerId, noteId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExpenseLine, error)
}
