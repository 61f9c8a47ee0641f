package service

import (
	"context"

	"chambers-practice-be/internal/dto"
	"chambers-practice-be/internal/entity"
	"chambers-practice-be/internal/pkg/serverutils"
	"chambers-practice-be/internal/repository/specification"
	"chambers-practice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITranscriptService interface {
	List(ctx context.Context, limit int) (*dto.ListTranscriptsResponse, error)
	Create(ctx context.Context, req *dto.CreateTranscriptRequest) (*dto.CreateTranscriptResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.OkResponse, error)
}

type transcriptService struct {
	uowFactory unitofwork.RepositoryFactory
	ownerId    uuid.UUID
}

func NewTranscriptService(uowFactory unitofwork.RepositoryFactory, ownerId uuid.UUID) ITranscriptService {
	return &transcriptService{
		uowFactory: uowFactory,
		ownerId:    ownerId,
	}
}

func (s *transcriptService) List(ctx context.Context, limit int) (*dto.ListTranscriptsResponse, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	transcripts, err := uow.TranscriptRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: s.ownerId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.LimitTo{Limit: limit},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("List failed", err)
	}

	resp := &dto.ListTranscriptsResponse{
		Items: make([]*dto.TranscriptResponse, 0, len(transcripts)),
		Count: len(transcripts),
	}
	for _, t := range transcripts {
		resp.Items = append(resp.Items, toTranscriptResponse(t))
	}
	return resp, nil
}

func (s *transcriptService) Create(ctx context.Context, req *dto.CreateTranscriptRequest) (*dto.CreateTranscriptResponse, error) {
	transcript := &entity.Transcript{
		Id:              uuid.New(),
		OwnerId:         s.ownerId,
		Text:            req.Text,
		Provider:        req.Provider,
		Confidence:      req.Confidence,
		DurationSeconds: req.DurationSeconds,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TranscriptRepository().Create(ctx, transcript); err != nil {
		return nil, serverutils.NewStoreError("Create failed", err)
	}
	return &dto.CreateTranscriptResponse{Id: transcript.Id}, nil
}

func (s *transcriptService) Delete(ctx context.Context, id uuid.UUID) (*dto.OkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	transcript, err := uow.TranscriptRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{OwnerID: s.ownerId},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("Read failed", err)
	}
	if transcript == nil {
		return nil, serverutils.NewNotFoundError("Transcript not found")
	}

	if err := uow.TranscriptRepository().Delete(ctx, s.ownerId, id); err != nil {
		return nil, serverutils.NewStoreError("Delete failed", err)
	}
	return &dto.OkResponse{Ok: true}, nil
}

func toTranscriptResponse(t *entity.Transcript) *dto.TranscriptResponse {
	return &dto.TranscriptResponse{
		Id:              t.Id,
		Text:            t.Text,
		Provider:        t.Provider,
		Confidence:      t.Confidence,
		DurationSeconds: t.DurationSeconds,
		CreatedAt:       t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
