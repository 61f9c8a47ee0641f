package dto

import "github.com/google/uuid"

type EmailReportRequest struct {
	Id              uuid.UUID `json:"id" validate:"required"`
	To              string    `json:"to" validate:"required,email"`
	IncludeExpenses bool      `json:"include_expenses"`
}
