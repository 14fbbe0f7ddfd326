package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist is a canonical performer. DisplayName preserves the case of whichever
// descriptor first caused creation; Slug is globally unique.
type Artist struct {
	BaseUUIDModel
	FirstName   string     `gorm:"type:text;not null"                             json:"firstName"`
	LastName    string     `gorm:"type:text;not null"                             json:"lastName"`
	DisplayName string     `gorm:"type:text;not null;index:idx_artists_display"   json:"displayName"`
	Slug        string     `gorm:"type:text;not null;uniqueIndex:idx_artists_slug" json:"slug"`
	IsActive    bool       `gorm:"type:bool;default:true"                         json:"isActive"`
	CreatedByID *uuid.UUID `gorm:"type:uuid"                                      json:"createdById,omitempty"`

	Releases []Release `gorm:"many2many:artist_releases;" json:"releases,omitempty"`
	Groups   []Group   `gorm:"many2many:artist_groups;"   json:"groups,omitempty"`
	Tracks   []Track   `gorm:"many2many:track_artists;"   json:"tracks,omitempty"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if a.DisplayName == "" {
		return gorm.ErrInvalidValue
	}
	if a.Slug == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
