package models

import (
	"time"

	"gorm.io/gorm"
)

type UploadStatus string

const (
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusComplete  UploadStatus = "complete"
	UploadStatusAbandoned UploadStatus = "abandoned"
)

// Track is created exactly once per successfully ingested descriptor and
// never updated by the ingestion pipeline afterwards.
type Track struct {
	BaseUUIDModel
	Title           string       `gorm:"type:text;not null;index:idx_tracks_title" json:"title"`
	DurationSeconds int          `gorm:"type:int;not null"                         json:"durationSeconds"`
	AudioURL        string       `gorm:"type:text"                                 json:"audioUrl"`
	Position        *int         `gorm:"type:int"                                  json:"position,omitempty"`
	CoverArtURL     *string      `gorm:"type:text"                                 json:"coverArtUrl,omitempty"`
	ContentHash     *string      `gorm:"type:text;index:idx_tracks_content_hash"   json:"contentHash,omitempty"`
	UploadStatus    UploadStatus `gorm:"type:text;default:'complete';index:idx_tracks_upload_status" json:"uploadStatus"`
	PublishedOn     *time.Time   `gorm:"type:timestamptz"                          json:"publishedOn,omitempty"`

	Artists  []Artist  `gorm:"many2many:track_artists;"  json:"artists,omitempty"`
	Releases []Release `gorm:"many2many:release_tracks;" json:"releases,omitempty"`
}

func (t *Track) BeforeCreate(tx *gorm.DB) (err error) {
	if t.Title == "" {
		return gorm.ErrInvalidValue
	}
	if t.DurationSeconds <= 0 {
		return gorm.ErrInvalidValue
	}
	if t.UploadStatus == "" {
		t.UploadStatus = UploadStatusComplete
	}
	return nil
}
