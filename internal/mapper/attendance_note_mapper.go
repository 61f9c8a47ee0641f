package mapper

import (
	"time"

	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/model"
)

type AttendanceNoteMapper struct{}

func NewAttendanceNoteMapper() *AttendanceNoteMapper {
	return &AttendanceNoteMapper{}
}

func (m *AttendanceNoteMapper) ToEntity(n *model.AttendanceNote) *entity.AttendanceNote {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.AttendanceNote{
		Id:              n.Id,
		OwnerId:         n.OwnerId,
		ClientFirstName: n.ClientFirstName,
		ClientLastName:  n.ClientLastName,
		CourtName:       n.CourtName,
		CourtDate:       n.CourtDate,
		NextStepsDate:   n.NextStepsDate,
		Coram:           n.Coram,
		Contra:          n.Contra,
		LawFirm:         n.LawFirm,
		LawyerName:      n.LawyerName,
		HearingType:     n.HearingType,
		Outcome:         n.Outcome,
		Remand:          n.Remand,
		AdviceText:      n.AdviceText,
		ClosingText:     n.ClosingText,
		Status:          n.Status,
		Archived:        n.Archived,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *AttendanceNoteMapper) ToModel(n *entity.AttendanceNote) *model.AttendanceNote {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.AttendanceNote{
		Id:              n.Id,
		OwnerId:         n.OwnerId,
		ClientFirstName: n.ClientFirstName,
		ClientLastName:  n.ClientLastName,
		CourtName:       n.CourtName,
		CourtDate:       n.CourtDate,
		NextStepsDate:   n.NextStepsDate,
		Coram:           n.Coram,
		Contra:          n.Contra,
		LawFirm:         n.LawFirm,
		LawyerName:      n.LawyerName,
		HearingType:     n.HearingType,
		Outcome:         n.Outcome,
		Remand:          n.Remand,
		AdviceText:      n.AdviceText,
		ClosingText:     n.ClosingText,
		Status:          n.Status,
		Archived:        n.Archived,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *AttendanceNoteMapper) ToEntities(notes []*model.AttendanceNote) []*entity.AttendanceNote {
	entities := make([]*entity.AttendanceNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
