package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseLine belongs to exactly one attendance note. The set is
// replace-on-save: lines never survive a resubmission of the parent
// note's expenses.
type ExpenseLine struct {
	Id               uuid.UUID
	OwnerId          uuid.UUID
	AttendanceNoteId uuid.UUID
	ExpenseType      string
	Amount           float64
	CreatedAt        time.Time
}
