package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReleaseFormat string

const (
	FormatVinyl    ReleaseFormat = "vinyl"
	FormatCD       ReleaseFormat = "cd"
	FormatCassette ReleaseFormat = "cassette"
	FormatDigital  ReleaseFormat = "digital"
	FormatOther    ReleaseFormat = "other"
)

// Release is a canonical album/issue. Matching is case-insensitive by title
// only; titles are not unique at the store level and the first match wins.
type Release struct {
	BaseUUIDModel
	Title         string         `gorm:"type:text;not null;index:idx_releases_title" json:"title"`
	Formats       datatypes.JSON `gorm:"type:jsonb"                                  json:"formats"`
	Labels        datatypes.JSON `gorm:"type:jsonb"                                  json:"labels"`
	CatalogNumber *string        `gorm:"type:text"                                   json:"catalogNumber,omitempty"`
	ReleaseDate   time.Time      `gorm:"type:date"                                   json:"releaseDate"`
	CoverArtURL   *string        `gorm:"type:text"                                   json:"coverArtUrl,omitempty"`

	Artists []Artist `gorm:"many2many:artist_releases;" json:"artists,omitempty"`
	Tracks  []Track  `gorm:"many2many:release_tracks;"  json:"tracks,omitempty"`
}

func (r *Release) BeforeCreate(tx *gorm.DB) (err error) {
	if r.Title == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
