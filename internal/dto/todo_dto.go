package dto

import "github.com/google/uuid"

type CreateTodoRequest struct {
	Title  string `json:"title" validate:"required"`
	DueAt  string `json:"due_at"` // YYYY-MM-DD
	CaseId string `json:"case_id"`
}

type CreateTodoResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTodoRequest struct {
	Id     uuid.UUID `json:"id" validate:"required"`
	Status string    `json:"status" validate:"required"`
}

type TodoResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	DueAt     string    `json:"due_at,omitempty"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	CaseId    string    `json:"case_id,omitempty"`
	CreatedAt string    `json:"created_at"`
}

type ListTodosResponse struct {
	Items []*TodoResponse `json:"items"`
}

type ListTodosQuery struct {
	Status string
	Limit  int
}
