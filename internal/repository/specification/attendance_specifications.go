package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStatus filters attendance notes (or todos) on their status column.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// NotArchived is the default listing filter: soft-deleted notes stay
// readable but drop out of lists.
type NotArchived struct{}

func (s NotArchived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("archived = ?", false)
}

// ArchivedOnly returns only soft-deleted notes.
type ArchivedOnly struct{}

func (s ArchivedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("archived = ?", true)
}

// ByAttendanceNote filters expense lines by their parent note.
type ByAttendanceNote struct {
	NoteID uuid.UUID
}

func (s ByAttendanceNote) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("attendance_note_id = ?", s.NoteID)
}
