package model

import (
	"time"

	"github.com/google/uuid"
)

type DirectoryItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(32);not null;index"`
	Value     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (DirectoryItem) TableName() string {
	return "directory_items"
}
