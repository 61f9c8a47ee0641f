package specification

import "gorm.io/gorm"

// ByDirectoryType filters directory items on their category.
type ByDirectoryType struct {
	Type string
}

func (s ByDirectoryType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// ByValue filters directory items on the stored value string.
type ByValue struct {
	Value string
}

func (s ByValue) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("value = ?", s.Value)
}
