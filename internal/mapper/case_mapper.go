package mapper

import (
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/model"
)

type CaseMapper struct{}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{}
}

func (m *CaseMapper) ToEntity(c *model.Case) *entity.Case {
	if c == nil {
		return nil
	}
	return &entity.Case{
		Id:          c.Id,
		OwnerId:     c.OwnerId,
		CaseRef:     c.CaseRef,
		ClientName:  c.ClientName,
		Court:       c.Court,
		HearingDate: c.HearingDate,
		Result:      c.Result,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CaseMapper) ToModel(c *entity.Case) *model.Case {
	if c == nil {
		return nil
	}
	return &model.Case{
		Id:          c.Id,
		OwnerId:     c.OwnerId,
		CaseRef:     c.CaseRef,
		ClientName:  c.ClientName,
		Court:       c.Court,
		HearingDate: c.HearingDate,
		Result:      c.Result,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CaseMapper) ToEntities(cases []*model.Case) []*entity.Case {
	entities := make([]*entity.Case, len(cases))
	for i, c := range cases {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
