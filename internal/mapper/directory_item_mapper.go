package mapper

import (
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/model"
)

type DirectoryItemMapper struct{}

func NewDirectoryItemMapper() *DirectoryItemMapper {
	return &DirectoryItemMapper{}
}

func (m *DirectoryItemMapper) ToEntity(d *model.DirectoryItem) *entity.DirectoryItem {
	if d == nil {
		return nil
	}
	return &entity.DirectoryItem{
		Id:        d.Id,
		OwnerId:   d.OwnerId,
		Type:      d.Type,
		Value:     d.Value,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DirectoryItemMapper) ToModel(d *entity.DirectoryItem) *model.DirectoryItem {
	if d == nil {
		return nil
	}
	return &model.DirectoryItem{
		Id:        d.Id,
		OwnerId:   d.OwnerId,
		Type:      d.Type,
		Value:     d.Value,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DirectoryItemMapper) ToEntities(items []*model.DirectoryItem) []*entity.DirectoryItem {
	entities := make([]*entity.DirectoryItem, len(items))
	for i, d := range items {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
