package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TodoStatusOpen = "open"
	TodoStatusDone = "done"

	TodoSourceManual     = "manual"
	TodoSourceTranscript = "transcript"
)

type Todo struct {
	Id        uuid.UUID
	OwnerId   uuid.UUID
	Title     string
	DueAt     *time.Time
	Status    string
	Source    string
	CaseId    *uuid.UUID
	CreatedAt time.Time
}
