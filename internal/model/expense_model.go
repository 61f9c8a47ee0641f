package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceExpense struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerId          uuid.UUID `gorm:"type:uuid;not null;index"`
	AttendanceNoteId uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpenseType      string    `gorm:"type:varchar(255);not null"`
	Amount           float64   `gorm:"type:numeric(10,2);not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (AttendanceExpense) TableName() string {
	return "attendance_expenses"
}
