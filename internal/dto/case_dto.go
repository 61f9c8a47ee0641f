package dto

import "github.com/google/uuid"

type CreateCaseRequest struct {
	CaseRef     string `json:"case_ref" validate:"required"`
	ClientName  string `json:"client_name" validate:"required"`
	Court       string `json:"court"`
	HearingDate string `json:"hearing_date"` // YYYY-MM-DD
	Result      string `json:"result"`
	Notes       string `json:"notes"`
}

type CaseResponse struct {
	Id          uuid.UUID `json:"id"`
	CaseRef     string    `json:"case_ref"`
	ClientName  string    `json:"client_name"`
	Court       string    `json:"court"`
	HearingDate string    `json:"hearing_date,omitempty"`
	Result      string    `json:"result"`
	CreatedAt   string    `json:"created_at"`
}

type CreateCaseResponse struct {
	Ok   bool          `json:"ok"`
	Case *CaseResponse `json:"case"`
}

type ListCasesResponse struct {
	Items []*CaseResponse `json:"items"`
}
