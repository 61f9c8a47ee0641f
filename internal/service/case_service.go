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

// recentCasesLimit matches the dashboard widget: only the latest few
// cases are ever shown.
const recentCasesLimit = 10

type ICaseService interface {
	List(ctx context.Context) (*dto.ListCasesResponse, error)
	Create(ctx context.Context, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error)
}

type caseService struct {
	uowFactory unitofwork.RepositoryFactory
	ownerId    uuid.UUID
}

func NewCaseService(uowFactory unitofwork.RepositoryFactory, ownerId uuid.UUID) ICaseService {
	return &caseService{
		uowFactory: uowFactory,
		ownerId:    ownerId,
	}
}

func (s *caseService) List(ctx context.Context) (*dto.ListCasesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cases, err := uow.CaseRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: s.ownerId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.LimitTo{Limit: recentCasesLimit},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("List failed", err)
	}

	resp := &dto.ListCasesResponse{Items: make([]*dto.CaseResponse, 0, len(cases))}
	for _, c := range cases {
		resp.Items = append(resp.Items, toCaseResponse(c))
	}
	return resp, nil
}

func (s *caseService) Create(ctx context.Context, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error) {
	c := &entity.Case{
		Id:         uuid.New(),
		OwnerId:    s.ownerId,
		CaseRef:    req.CaseRef,
		ClientName: req.ClientName,
		Court:      req.Court,
		Result:     req.Result,
		Notes:      req.Notes,
	}
	if req.HearingDate != "" {
		hearing, err := parseDate(req.HearingDate)
		if err != nil {
			return nil, serverutils.NewValidationError("hearing_date must be YYYY-MM-DD")
		}
		c.HearingDate = &hearing
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CaseRepository().Create(ctx, c); err != nil {
		return nil, serverutils.NewStoreError("Create failed", err)
	}
	return &dto.CreateCaseResponse{Ok: true, Case: toCaseResponse(c)}, nil
}

func toCaseResponse(c *entity.Case) *dto.CaseResponse {
	resp := &dto.CaseResponse{
		Id:         c.Id,
		CaseRef:    c.CaseRef,
		ClientName: c.ClientName,
		Court:      c.Court,
		Result:     c.Result,
		CreatedAt:  c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if c.HearingDate != nil {
		resp.HearingDate = c.HearingDate.Format("2006-01-02")
	}
	return resp
}
