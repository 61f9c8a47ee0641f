package entity

import (
	"time"

	"github.com/google/uuid"
)

// Directory categories promoted from free-text note fields.
const (
	DirectoryTypeJudges       = "judges"
	DirectoryTypeLawyers      = "lawyers"
	DirectoryTypeLawFirms     = "law_firms"
	DirectoryTypeCourtrooms   = "courtrooms"
	DirectoryTypeContra       = "contra"
	DirectoryTypeHearingTypes = "hearing_types"
)

var DirectoryTypes = []string{
	DirectoryTypeJudges,
	DirectoryTypeLawyers,
	DirectoryTypeLawFirms,
	DirectoryTypeCourtrooms,
	DirectoryTypeContra,
	DirectoryTypeHearingTypes,
}

func IsDirectoryType(t string) bool {
	for _, known := range DirectoryTypes {
		if known == t {
			return true
		}
	}
	return false
}

type DirectoryItem struct {
	Id        uuid.UUID
	OwnerId   uuid.UUID
	Type      string
	Value     string
	CreatedAt time.Time
}
