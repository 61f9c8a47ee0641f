package model

import (
	"time"

	"github.com/google/uuid"
)

type Transcript struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Text            string    `gorm:"type:text;not null"`
	Provider        string    `gorm:"type:varchar(64)"`
	Confidence      *float64
	DurationSeconds *int
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Transcript) TableName() string {
	return "transcripts"
}
