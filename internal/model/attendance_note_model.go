package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceNote struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientFirstName string     `gorm:"type:varchar(255);not null"`
	ClientLastName  string     `gorm:"type:varchar(255);not null"`
	CourtName       string     `gorm:"type:varchar(255)"`
	CourtDate       time.Time  `gorm:"type:date;not null"`
	NextStepsDate   *time.Time `gorm:"type:date"`
	Coram           string     `gorm:"type:varchar(255)"`
	Contra          string     `gorm:"type:varchar(255)"`
	LawFirm         string     `gorm:"type:varchar(255)"`
	LawyerName      string     `gorm:"type:varchar(255)"`
	HearingType     string     `gorm:"type:varchar(255)"`
	Outcome         string     `gorm:"type:text"`
	Remand          string     `gorm:"type:varchar(255)"`
	AdviceText      string     `gorm:"type:text"`
	ClosingText     string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(16);not null;default:draft"`
	Archived        bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (AttendanceNote) TableName() string {
	return "attendance_notes"
}
