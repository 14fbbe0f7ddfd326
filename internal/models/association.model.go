package models

import (
	"github.com/google/uuid"
)

// AssociationKind names a join relation between two canonical entities.
type AssociationKind string

const (
	AssociationArtistRelease AssociationKind = "artist_release"
	AssociationTrackArtist   AssociationKind = "track_artist"
	AssociationArtistGroup   AssociationKind = "artist_group"
	AssociationReleaseTrack  AssociationKind = "release_track"
)

// Join rows are explicit models rather than implicit many2many side effects:
// the ingestion pipeline must check-then-create each pair, including when an
// entity came out of the batch cache. At most one row exists per pair.

type ArtistRelease struct {
	BaseModel
	ArtistID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_artist_releases_pair" json:"artistId"`
	ReleaseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_artist_releases_pair" json:"releaseId"`
}

type TrackArtist struct {
	BaseModel
	TrackID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_track_artists_pair" json:"trackId"`
	ArtistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_track_artists_pair" json:"artistId"`
}

type ArtistGroup struct {
	BaseModel
	ArtistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_artist_groups_pair" json:"artistId"`
	GroupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_artist_groups_pair" json:"groupId"`
}

type ReleaseTrack struct {
	BaseModel
	ReleaseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_release_tracks_pair" json:"releaseId"`
	TrackID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_release_tracks_pair" json:"trackId"`
}
