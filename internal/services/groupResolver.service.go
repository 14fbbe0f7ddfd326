package services

import (
	"context"
	"fmt"
	"strings"

	. "melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/pkg/logger"

	"github.com/google/uuid"
)

// GroupResolution reports what resolving one group name did.
type GroupResolution struct {
	ID           uuid.UUID
	DisplayName  string
	Created      bool
	ArtistLinked bool
}

type ResolveGroupOptions struct {
	ArtistID *uuid.UUID
}

type GroupResolverService struct {
	groups       repositories.GroupRepository
	associations repositories.AssociationRepository
	log          logger.Logger
}

func NewGroupResolverService(
	groups repositories.GroupRepository,
	associations repositories.AssociationRepository,
) *GroupResolverService {
	return &GroupResolverService{
		groups:       groups,
		associations: associations,
		log:          logger.New("GroupResolverService"),
	}
}

// Resolve finds or creates the canonical Group for a name, matching name or
// display name case-insensitively. Groups carry no slug; they are identified
// by raw name. The Artist-Group association is reconciled on every path,
// cache hits included.
func (s *GroupResolverService) Resolve(
	ctx context.Context,
	name string,
	opts ResolveGroupOptions,
	cache *ResolutionCache,
) (GroupResolution, error) {
	log := s.log.Function("Resolve")

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return GroupResolution{}, NewValidationError("group name cannot be empty")
	}

	resolution := GroupResolution{}

	if cached, ok := cache.Group(trimmed); ok {
		resolution.ID = cached.ID
		resolution.DisplayName = cached.DisplayName
		resolution.Created = cached.WasCreated
	} else {
		existing, err := s.groups.FindByNameCaseInsensitive(ctx, trimmed)
		if err != nil {
			return GroupResolution{}, fmt.Errorf("failed to resolve group: %w", err)
		}

		if existing != nil {
			resolution.ID = existing.ID
			resolution.DisplayName = existing.DisplayName
			cache.SetGroup(trimmed, ResolvedEntity{
				ID:          existing.ID,
				DisplayName: existing.DisplayName,
				WasCreated:  false,
			})
		} else {
			group := &Group{
				Name:        trimmed,
				DisplayName: trimmed,
			}
			created, err := s.groups.Create(ctx, group)
			if err != nil {
				return GroupResolution{}, fmt.Errorf("failed to resolve group: %w", err)
			}
			resolution.ID = created.ID
			resolution.DisplayName = created.DisplayName
			resolution.Created = true
			cache.SetGroup(trimmed, ResolvedEntity{
				ID:          created.ID,
				DisplayName: created.DisplayName,
				WasCreated:  true,
			})
			log.Info("Created new group", "name", created.Name)
		}
	}

	if opts.ArtistID != nil {
		exists, err := s.associations.Exists(ctx, AssociationArtistGroup, *opts.ArtistID, resolution.ID)
		if err != nil {
			return GroupResolution{}, fmt.Errorf("failed to resolve group: %w", err)
		}
		if !exists {
			if err := s.associations.Create(ctx, AssociationArtistGroup, *opts.ArtistID, resolution.ID); err != nil {
				return GroupResolution{}, fmt.Errorf("failed to resolve group: %w", err)
			}
			resolution.ArtistLinked = true
		}
	}

	return resolution, nil
}
