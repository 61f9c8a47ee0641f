package mapper

import (
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/model"
)

type TodoMapper struct{}

func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

func (m *TodoMapper) ToEntity(t *model.Todo) *entity.Todo {
	if t == nil {
		return nil
	}
	return &entity.Todo{
		Id:        t.Id,
		OwnerId:   t.OwnerId,
		Title:     t.Title,
		DueAt:     t.DueAt,
		Status:    t.Status,
		Source:    t.Source,
		CaseId:    t.CaseId,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TodoMapper) ToModel(t *entity.Todo) *model.Todo {
	if t == nil {
		return nil
	}
	return &model.Todo{
		Id:        t.Id,
		OwnerId:   t.OwnerId,
		Title:     t.Title,
		DueAt:     t.DueAt,
		Status:    t.Status,
		Source:    t.Source,
		CaseId:    t.CaseId,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TodoMapper) ToEntities(todos []*model.Todo) []*entity.Todo {
	entities := make([]*entity.Todo, len(todos))
	for i, t := range todos {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TodoMapper) ToModels(todos []*entity.Todo) []*model.Todo {
	models := make([]*model.Todo, len(todos))
	for i, t := range todos {
		models[i] = m.ToModel(t)
	}
	return models
}
