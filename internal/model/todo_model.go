package model

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	DueAt     *time.Time `gorm:"type:date"`
	Status    string     `gorm:"type:varchar(16);not null;default:open"`
	Source    string     `gorm:"type:varchar(16);not null;default:manual"`
	CaseId    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Todo) TableName() string {
	return "todos"
}
