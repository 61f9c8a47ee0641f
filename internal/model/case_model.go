package model

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CaseRef     string     `gorm:"type:varchar(64);not null"`
	ClientName  string     `gorm:"type:varchar(255);not null"`
	Court       string     `gorm:"type:varchar(255)"`
	HearingDate *time.Time `gorm:"type:date"`
	Result      string     `gorm:"type:varchar(255)"`
	Notes       string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (Case) TableName() string {
	return "cases"
}
