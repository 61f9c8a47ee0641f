package mapper

import (
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/model"
)

type TranscriptMapper struct{}

func NewTranscriptMapper() *TranscriptMapper {
	return &TranscriptMapper{}
}

func (m *TranscriptMapper) ToEntity(t *model.Transcript) *entity.Transcript {
	if t == nil {
		return nil
	}
	return &entity.Transcript{
		Id:              t.Id,
		OwnerId:         t.OwnerId,
		Text:            t.Text,
		Provider:        t.Provider,
		Confidence:      t.Confidence,
		DurationSeconds: t.DurationSeconds,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *TranscriptMapper) ToModel(t *entity.Transcript) *model.Transcript {
	if t == nil {
		return nil
	}
	return &model.Transcript{
		Id:              t.Id,
		OwnerId:         t.OwnerId,
		Text:            t.Text,
		Provider:        t.Provider,
		Confidence:      t.Confidence,
		DurationSeconds: t.DurationSeconds,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *TranscriptMapper) ToEntities(transcripts []*model.Transcript) []*entity.Transcript {
	entities := make([]*entity.Transcript, len(transcripts))
	for i, t := range transcripts {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
