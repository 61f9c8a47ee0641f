package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NoteStatusDraft = "draft"
	NoteStatusFinal = "final"
	NoteStatusSent  = "sent"
)

type AttendanceNote struct {
	Id              uuid.UUID
	OwnerId         uuid.UUID
	ClientFirstName string
	ClientLastName  string
	CourtName       string
	CourtDate       time.Time
	NextStepsDate   *time.Time
	Coram           string
	Contra          string
	LawFirm         string
	LawyerName      string
	HearingType     string
	Outcome         string
	Remand          string
	AdviceText      string
	ClosingText     string
	Status          string
	Archived        bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// ClientFullName joins the name parts, skipping empties.
func (n *AttendanceNote) ClientFullName() string {
	if n.ClientFirstName == "" {
		return n.ClientLastName
	}
	if n.ClientLastName == "" {
		return n.ClientFirstName
	}
	return n.ClientFirstName + " " + n.ClientLastName
}

// CanTransitionTo enforces the forward-only lifecycle:
// draft -> final -> sent, plus no-op same-to-same moves.
func (n *AttendanceNote) CanTransitionTo(next string) bool {
	if n.Status == next {
		return true
	}
	switch {
	case n.Status == NoteStatusDraft && next == NoteStatusFinal:
		return true
	case n.Status == NoteStatusFinal && next == NoteStatusSent:
		return true
	}
	return false
}
