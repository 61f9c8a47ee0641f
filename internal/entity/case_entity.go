package entity

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id          uuid.UUID
	OwnerId     uuid.UUID
	CaseRef     string
	ClientName  string
	Court       string
	HearingDate *time.Time
	Result      string
	Notes       string
	CreatedAt   time.Time
}
