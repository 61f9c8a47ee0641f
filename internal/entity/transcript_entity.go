package entity

import (
	"time"

	"github.com/google/uuid"
)

type Transcript struct {
	Id              uuid.UUID
	OwnerId         uuid.UUID
	Text            string
	Provider        string
	Confidence      *float64
	DurationSeconds *int
	CreatedAt       time.Time
}
