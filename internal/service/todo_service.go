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

type ITodoService interface {
	List(ctx context.Context, query *dto.ListTodosQuery) (*dto.ListTodosResponse, error)
	Create(ctx context.Context, req *dto.CreateTodoRequest) (*dto.CreateTodoResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateTodoRequest) (*dto.OkResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.OkResponse, error)
}

type todoService struct {
	uowFactory unitofwork.RepositoryFactory
	ownerId    uuid.UUID
}

func NewTodoService(uowFactory unitofwork.RepositoryFactory, ownerId uuid.UUID) ITodoService {
	return &todoService{
		uowFactory: uowFactory,
		ownerId:    ownerId,
	}
}

func (s *todoService) List(ctx context.Context, query *dto.ListTodosQuery) (*dto.ListTodosResponse, error) {
	specs := []specification.Specification{
		specification.OwnedBy{OwnerID: s.ownerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	switch query.Status {
	case "":
		// all
	case entity.TodoStatusOpen, entity.TodoStatusDone:
		specs = append(specs, specification.ByStatus{Status: query.Status})
	default:
		return nil, serverutils.NewValidationError("Invalid status filter")
	}
	limit := query.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	specs = append(specs, specification.LimitTo{Limit: limit})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	todos, err := uow.TodoRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewStoreError("List failed", err)
	}

	resp := &dto.ListTodosResponse{Items: make([]*dto.TodoResponse, 0, len(todos))}
	for _, todo := range todos {
		resp.Items = append(resp.Items, toTodoResponse(todo))
	}
	return resp, nil
}

func (s *todoService) Create(ctx context.Context, req *dto.CreateTodoRequest) (*dto.CreateTodoResponse, error) {
	todo := &entity.Todo{
		Id:      uuid.New(),
		OwnerId: s.ownerId,
		Title:   req.Title,
		Status:  entity.TodoStatusOpen,
		Source:  entity.TodoSourceManual,
	}
	if req.DueAt != "" {
		due, err := parseDate(req.DueAt)
		if err != nil {
			return nil, serverutils.NewValidationError("due_at must be YYYY-MM-DD")
		}
		todo.DueAt = &due
	}
	if req.CaseId != "" {
		caseId, err := uuid.Parse(req.CaseId)
		if err != nil {
			return nil, serverutils.NewValidationError("case_id must be a uuid")
		}
		todo.CaseId = &caseId
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TodoRepository().Create(ctx, todo); err != nil {
		return nil, serverutils.NewStoreError("Create failed", err)
	}
	return &dto.CreateTodoResponse{Id: todo.Id}, nil
}

func (s *todoService) UpdateStatus(ctx context.Context, req *dto.UpdateTodoRequest) (*dto.OkResponse, error) {
	if req.Status != entity.TodoStatusOpen && req.Status != entity.TodoStatusDone {
		return nil, serverutils.NewValidationError("status must be open or done")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	todo, err := uow.TodoRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{OwnerID: s.ownerId},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("Read failed", err)
	}
	if todo == nil {
		return nil, serverutils.NewNotFoundError("Todo not found")
	}

	todo.Status = req.Status
	if err := uow.TodoRepository().Update(ctx, todo); err != nil {
		return nil, serverutils.NewStoreError("Update failed", err)
	}
	return &dto.OkResponse{Ok: true}, nil
}

func (s *todoService) Delete(ctx context.Context, id uuid.UUID) (*dto.OkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	todo, err := uow.TodoRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{OwnerID: s.ownerId},
	)
	if err != nil {
		return nil, serverutils.NewStoreError("Read failed", err)
	}
	if todo == nil {
		return nil, serverutils.NewNotFoundError("Todo not found")
	}

	if err := uow.TodoRepository().Delete(ctx, s.ownerId, id); err != nil {
		return nil, serverutils.NewStoreError("Delete failed", err)
	}
	return &dto.OkResponse{Ok: true}, nil
}

func toTodoResponse(todo *entity.Todo) *dto.TodoResponse {
	resp := &dto.TodoResponse{
		Id:        todo.Id,
		Title:     todo.Title,
		Status:    todo.Status,
		Source:    todo.Source,
		CreatedAt: todo.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if todo.DueAt != nil {
		resp.DueAt = todo.DueAt.Format("2006-01-02")
	}
	if todo.CaseId != nil {
		resp.CaseId = todo.CaseId.String()
	}
	return resp
}
