package repositories

import (
	"melodex/internal/database"
)

type Repository struct {
	Artist      ArtistRepository
	Group       GroupRepository
	Release     ReleaseRepository
	Track       TrackRepository
	Association AssociationRepository
}

func New(db database.DB) Repository {
	return Repository{
		Artist:      NewArtistRepository(db),
		Group:       NewGroupRepository(db),
		Release:     NewReleaseRepository(db),
		Track:       NewTrackRepository(db),
		Association: NewAssociationRepository(db),
	}
}
