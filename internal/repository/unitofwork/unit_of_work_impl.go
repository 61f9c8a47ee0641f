package unitofwork

import (
	"context"
	"fmt"

	"chambers-practice-be/internal/repository/contract"
	"chambers-practice-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) AttendanceNoteRepository() contract.AttendanceNoteRepository {
	return implementation.NewAttendanceNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExpenseRepository() contract.ExpenseRepository {
	return implementation.NewExpenseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DirectoryRepository() contract.DirectoryRepository {
	return implementation.NewDirectoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TodoRepository() contract.TodoRepository {
	return implementation.NewTodoRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TranscriptRepository() contract.TranscriptRepository {
	return implementation.NewTranscriptRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CaseRepository() contract.CaseRepository {
	return implementation.NewCaseRepository(u.getDB())
}
