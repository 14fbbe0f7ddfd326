package models

import (
	"gorm.io/gorm"
)

// Group is a canonical ensemble/band. Lookups match case-insensitively against
// both Name and DisplayName; uniqueness is not enforced at this layer.
type Group struct {
	BaseUUIDModel
	Name        string `gorm:"type:text;not null;index:idx_groups_name" json:"name"`
	DisplayName string `gorm:"type:text;not null"                       json:"displayName"`

	Artists []Artist `gorm:"many2many:artist_groups;" json:"artists,omitempty"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) (err error) {
	if g.Name == "" {
		return gorm.ErrInvalidValue
	}
	if g.DisplayName == "" {
		g.DisplayName = g.Name
	}
	return nil
}
