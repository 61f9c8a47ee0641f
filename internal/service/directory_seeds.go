package service

import "chambers-practice-be/internal/entity"

// DefaultDirectorySeeds are merged ahead of stored values on every
// directory list. They cover the usual South East circuit venues and
// standard hearing types so a fresh install has usable autocomplete.
func DefaultDirectorySeeds() map[string][]string {
	return map[string][]string{
		entity.DirectoryTypeCourtrooms: {
			"Basildon Crown Court",
			"Chelmsford Crown Court",
			"Inner London Crown Court",
			"Ipswich Crown Court",
			"Snaresbrook Crown Court",
			"Southwark Crown Court",
			"Woolwich Crown Court",
		},
		entity.DirectoryTypeHearingTypes: {
			"Appeal against Conviction",
			"Appeal against Sentence",
			"Bail Application",
			"Mention",
			"PTPH",
			"Pre-Trial Review",
			"Sentence",
			"Trial",
		},
	}
}
