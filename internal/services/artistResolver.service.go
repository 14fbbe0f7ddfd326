package services

import (
	"context"
	"fmt"
	"strings"

	. "melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/utils"
	"melodex/pkg/logger"

	"github.com/google/uuid"
)

// ArtistResolution reports what resolving one artist name did.
type ArtistResolution struct {
	ID            uuid.UUID
	DisplayName   string
	Created       bool
	ReleaseLinked bool
	TrackLinked   bool
}

// ResolveArtistOptions carries the associations to reconcile alongside the
// resolution itself.
type ResolveArtistOptions struct {
	ReleaseID *uuid.UUID
	TrackID   *uuid.UUID
}

type ArtistResolverService struct {
	artists      repositories.ArtistRepository
	associations repositories.AssociationRepository
	slugs        *SlugService
	log          logger.Logger
}

func NewArtistResolverService(
	artists repositories.ArtistRepository,
	associations repositories.AssociationRepository,
	slugs *SlugService,
) *ArtistResolverService {
	return &ArtistResolverService{
		artists:      artists,
		associations: associations,
		slugs:        slugs,
		log:          logger.New("ArtistResolverService"),
	}
}

// Resolve finds or creates the canonical Artist for a name, case-insensitively,
// reusing the batch cache when the name was already resolved. Association
// reconciliation runs on every path, cache hits included: a cached artist may
// still need linking to a release or track it has not been paired with yet.
func (s *ArtistResolverService) Resolve(
	ctx context.Context,
	name string,
	opts ResolveArtistOptions,
	cache *ResolutionCache,
) (ArtistResolution, error) {
	log := s.log.Function("Resolve")

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ArtistResolution{}, NewValidationError("artist name cannot be empty")
	}

	resolution := ArtistResolution{}

	if cached, ok := cache.Artist(trimmed); ok {
		resolution.ID = cached.ID
		resolution.DisplayName = cached.DisplayName
		resolution.Created = cached.WasCreated
	} else {
		existing, err := s.artists.FindByNameCaseInsensitive(ctx, trimmed)
		if err != nil {
			return ArtistResolution{}, fmt.Errorf("failed to resolve artist: %w", err)
		}

		if existing != nil {
			resolution.ID = existing.ID
			resolution.DisplayName = existing.DisplayName
			cache.SetArtist(trimmed, ResolvedEntity{
				ID:          existing.ID,
				DisplayName: existing.DisplayName,
				WasCreated:  false,
			})
		} else {
			created, err := s.create(ctx, trimmed)
			if err != nil {
				return ArtistResolution{}, err
			}
			resolution.ID = created.ID
			resolution.DisplayName = created.DisplayName
			resolution.Created = true
			cache.SetArtist(trimmed, ResolvedEntity{
				ID:          created.ID,
				DisplayName: created.DisplayName,
				WasCreated:  true,
			})
			log.Info("Created new artist", "displayName", created.DisplayName, "slug", created.Slug)
		}
	}

	if opts.ReleaseID != nil {
		linked, err := s.reconcile(ctx, AssociationArtistRelease, resolution.ID, *opts.ReleaseID)
		if err != nil {
			return ArtistResolution{}, fmt.Errorf("failed to resolve artist: %w", err)
		}
		resolution.ReleaseLinked = linked
	}

	if opts.TrackID != nil {
		linked, err := s.reconcile(ctx, AssociationTrackArtist, *opts.TrackID, resolution.ID)
		if err != nil {
			return ArtistResolution{}, fmt.Errorf("failed to resolve artist: %w", err)
		}
		resolution.TrackLinked = linked
	}

	return resolution, nil
}

func (s *ArtistResolverService) create(ctx context.Context, name string) (*Artist, error) {
	parts := utils.ParseArtistName(name)

	slug, err := s.slugs.GenerateUniqueSlug(ctx, name, s.artists.SlugExists)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve artist: %w", err)
	}

	artist := &Artist{
		FirstName:   parts.FirstName,
		LastName:    parts.LastName,
		DisplayName: parts.DisplayName,
		Slug:        slug,
		IsActive:    true,
	}

	created, err := s.artists.Create(ctx, artist)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve artist: %w", err)
	}

	return created, nil
}

// reconcile creates the association unless the pair already exists. Returns
// whether a row was created.
func (s *ArtistResolverService) reconcile(
	ctx context.Context,
	kind AssociationKind,
	idA, idB uuid.UUID,
) (bool, error) {
	exists, err := s.associations.Exists(ctx, kind, idA, idB)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := s.associations.Create(ctx, kind, idA, idB); err != nil {
		return false, err
	}
	return true, nil
}
