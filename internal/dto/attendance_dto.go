package dto

import (
	"github.com/google/uuid"
)

type ExpenseInput struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

type CreateAttendanceNoteRequest struct {
	ClientFirstName string         `json:"client_first_name" validate:"required"`
	ClientLastName  string         `json:"client_last_name" validate:"required"`
	CourtDate       string         `json:"court_date"`      // YYYY-MM-DD, defaults to today
	NextStepsDate   string         `json:"next_steps_date"` // YYYY-MM-DD
	CourtName       string         `json:"court_name"`
	LawFirm         string         `json:"law_firm"`
	LawyerName      string         `json:"lawyer_name"`
	HearingType     string         `json:"hearing_type"`
	Coram           string         `json:"coram"`
	Contra          string         `json:"contra"`
	Outcome         string         `json:"outcome"`
	Remand          string         `json:"remand"`
	AdviceText      string         `json:"advice_text"`
	ClosingText     string         `json:"closing_text"`
	Status          string         `json:"status"`
	Expenses        []ExpenseInput `json:"expenses"`
}

type CreateAttendanceNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

// UpdateAttendanceNoteRequest carries the original PATCH wire shape:
// a general field patch, or action=status / action=archive.
// Nil pointers mean "leave the field alone".
type UpdateAttendanceNoteRequest struct {
	Id            uuid.UUID       `json:"id" validate:"required"`
	Action        string          `json:"action"` // "status" | "archive" | ""
	Status        string          `json:"status"`
	ClientFirst   *string         `json:"client_first_name"`
	ClientLast    *string         `json:"client_last_name"`
	CourtDate     *string         `json:"court_date"`
	NextStepsDate *string         `json:"next_steps_date"`
	CourtName     *string         `json:"court_name"`
	LawFirm       *string         `json:"law_firm"`
	LawyerName    *string         `json:"lawyer_name"`
	HearingType   *string         `json:"hearing_type"`
	Coram         *string         `json:"coram"`
	Contra        *string         `json:"contra"`
	Outcome       *string         `json:"outcome"`
	Remand        *string         `json:"remand"`
	AdviceText    *string         `json:"advice_text"`
	ClosingText   *string         `json:"closing_text"`
	Expenses      *[]ExpenseInput `json:"expenses"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type AttendanceNoteResponse struct {
	Id              uuid.UUID `json:"id"`
	ClientFirstName string    `json:"client_first_name"`
	ClientLastName  string    `json:"client_last_name"`
	CourtName       string    `json:"court_name"`
	CourtDate       string    `json:"court_date"`
	NextStepsDate   string    `json:"next_steps_date,omitempty"`
	Coram           string    `json:"coram"`
	Contra          string    `json:"contra"`
	LawFirm         string    `json:"law_firm"`
	LawyerName      string    `json:"lawyer_name"`
	HearingType     string    `json:"hearing_type"`
	Outcome         string    `json:"outcome"`
	Remand          string    `json:"remand"`
	AdviceText      string    `json:"advice_text"`
	ClosingText     string    `json:"closing_text"`
	Status          string    `json:"status"`
	Archived        bool      `json:"archived"`
	CreatedAt       string    `json:"created_at"`
}

type ExpenseResponse struct {
	ExpenseType string  `json:"expense_type"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

type ListAttendanceNotesResponse struct {
	Items []*AttendanceNoteResponse `json:"items"`
	Count int                       `json:"count"`
}

type ShowAttendanceNoteResponse struct {
	Item     *AttendanceNoteResponse `json:"item"`
	Expenses []*ExpenseResponse      `json:"expenses,omitempty"`
}

// ListAttendanceNotesQuery mirrors the list filters: status, archived
// ("1"/"true" archived-only, "all" both, anything else non-archived),
// and a limit capped at 200.
type ListAttendanceNotesQuery struct {
	Status   string
	Archived string
	Limit    int
}
