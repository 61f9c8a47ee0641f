package implementation

import (
	"context"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/mapper"
	"chambers-practice-be/internal/model"
	"chambers-practice-be/internal/repository/contract"
	"chambers-practice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExpenseMapper
}

func NewExpenseRepository(db *gorm.DB) contract.ExpenseRepository {
	return &ExpenseRepositoryImpl{
		db:     db,
		mapper: mapper.NewExpenseMapper(),
	}
}

func (r *ExpenseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExpenseRepositoryImpl) CreateMany(ctx context.Context, lines []*entity.ExpenseLine) error {
	if len(lines) == 0 {
		return nil
	}
	models := r.mapper.ToModels(lines)
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *ExpenseRepositoryImpl) DeleteByNote(ctx context.Context, ownerId, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND attendance_note_id = ?", ownerId, noteId).
		Delete(&model.AttendanceExpense{}).Error
}

func (r *ExpenseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExpenseLine, error) {
	var models []*model.AttendanceExpense
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
