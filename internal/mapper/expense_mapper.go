package mapper

import (
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/model"
)

type ExpenseMapper struct{}

func NewExpenseMapper() *ExpenseMapper {
	return &ExpenseMapper{}
}

func (m *ExpenseMapper) ToEntity(e *model.AttendanceExpense) *entity.ExpenseLine {
	if e == nil {
		return nil
	}
	return &entity.ExpenseLine{
		Id:               e.Id,
		OwnerId:          e.OwnerId,
		AttendanceNoteId: e.AttendanceNoteId,
		ExpenseType:      e.ExpenseType,
		Amount:           e.Amount,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *ExpenseMapper) ToModel(e *entity.ExpenseLine) *model.AttendanceExpense {
	if e == nil {
		return nil
	}
	return &model.AttendanceExpense{
		Id:               e.Id,
		OwnerId:          e.OwnerId,
		AttendanceNoteId: e.AttendanceNoteId,
		ExpenseType:      e.ExpenseType,
		Amount:           e.Amount,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *ExpenseMapper) ToEntities(lines []*model.AttendanceExpense) []*entity.ExpenseLine {
	entities := make([]*entity.ExpenseLine, len(lines))
	for i, e := range lines {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *ExpenseMapper) ToModels(lines []*entity.ExpenseLine) []*model.AttendanceExpense {
	models := make([]*model.AttendanceExpense, len(lines))
	for i, e := range lines {
		models[i] = m.ToModel(e)
	}
	return models
}
