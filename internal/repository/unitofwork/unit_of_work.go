package unitofwork

import (
	"context"

	"chambers-practice-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AttendanceNoteRepository() contract.AttendanceNoteRepository
	ExpenseRepository() contract.ExpenseRepository
	DirectoryRepository() contract.DirectoryRepository
	TodoRepository() contract.TodoRepository
	TranscriptRepository() contract.TranscriptRepository
	CaseRepository() contract.CaseRepository
}
