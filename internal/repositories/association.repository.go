package repositories

import (
	"context"

	"melodex/internal/database"
	. "melodex/internal/models"
	"melodex/pkg/logger"

	"github.com/google/uuid"
)

// AssociationRepository manages the join rows between canonical entities. The
// pair order is fixed per kind: (artist, release), (track, artist),
// (artist, group), (release, track).
type AssociationRepository interface {
	Exists(ctx context.Context, kind AssociationKind, idA, idB uuid.UUID) (bool, error)
	Create(ctx context.Context, kind AssociationKind, idA, idB uuid.UUID) error
}

type associationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAssociationRepository(db database.DB) AssociationRepository {
	return &associationRepository{
		db:  db,
		log: logger.New("associationRepository"),
	}
}

func (r *associationRepository) Exists(
	ctx context.Context,
	kind AssociationKind,
	idA, idB uuid.UUID,
) (bool, error) {
	log := r.log.Function("Exists")

	var count int64
	var err error

	handle := r.db.SQLWithContext(ctx)
	switch kind {
	case AssociationArtistRelease:
		err = handle.Model(&ArtistRelease{}).
			Where("artist_id = ? AND release_id = ?", idA, idB).Count(&count).Error
	case AssociationTrackArtist:
		err = handle.Model(&TrackArtist{}).
			Where("track_id = ? AND artist_id = ?", idA, idB).Count(&count).Error
	case AssociationArtistGroup:
		err = handle.Model(&ArtistGroup{}).
			Where("artist_id = ? AND group_id = ?", idA, idB).Count(&count).Error
	case AssociationReleaseTrack:
		err = handle.Model(&ReleaseTrack{}).
			Where("release_id = ? AND track_id = ?", idA, idB).Count(&count).Error
	default:
		return false, log.Error("unknown association kind", "kind", kind)
	}

	if err != nil {
		return false, log.Err("failed to check association", err, "kind", kind)
	}

	return count > 0, nil
}

func (r *associationRepository) Create(
	ctx context.Context,
	kind AssociationKind,
	idA, idB uuid.UUID,
) error {
	log := r.log.Function("Create")

	var err error

	handle := r.db.SQLWithContext(ctx)
	switch kind {
	case AssociationArtistRelease:
		err = handle.Create(&ArtistRelease{ArtistID: idA, ReleaseID: idB}).Error
	case AssociationTrackArtist:
		err = handle.Create(&TrackArtist{TrackID: idA, ArtistID: idB}).Error
	case AssociationArtistGroup:
		err = handle.Create(&ArtistGroup{ArtistID: idA, GroupID: idB}).Error
	case AssociationReleaseTrack:
		err = handle.Create(&ReleaseTrack{ReleaseID: idA, TrackID: idB}).Error
	default:
		return log.Error("unknown association kind", "kind", kind)
	}

	if err != nil {
		return log.Err("failed to create association", err, "kind", kind)
	}

	return nil
}
