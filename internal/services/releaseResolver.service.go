package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	. "melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/utils"
	"melodex/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReleaseMetadata is the album-level slice of a track descriptor.
type ReleaseMetadata struct {
	Album         string
	ReleaseDate   string
	ReleaseYear   int
	Label         string
	CatalogNumber string
	CoverArtURL   string
}

// ReleaseResolution reports what resolving one album did.
type ReleaseResolution struct {
	ID      uuid.UUID
	Title   string
	Created bool
}

// ReleaseResolverService finds or creates releases by title. It keeps no
// cache of its own: the ingestion pre-pass invokes it once per distinct album
// and caches the result itself.
type ReleaseResolverService struct {
	releases repositories.ReleaseRepository
	now      func() time.Time
	log      logger.Logger
}

func NewReleaseResolverService(releases repositories.ReleaseRepository) *ReleaseResolverService {
	return &ReleaseResolverService{
		releases: releases,
		now:      time.Now,
		log:      logger.New("ReleaseResolverService"),
	}
}

// Resolve matches an existing Release by trimmed title, case-insensitive,
// first match wins. On miss it creates one: release date from the full date
// field when parseable, else a plausible year, else today; formats default to
// a single digital entry; labels become a single-element list when supplied.
func (s *ReleaseResolverService) Resolve(
	ctx context.Context,
	metadata ReleaseMetadata,
) (ReleaseResolution, error) {
	log := s.log.Function("Resolve")

	title := strings.TrimSpace(metadata.Album)
	if title == "" {
		return ReleaseResolution{}, NewValidationError("album title cannot be empty")
	}

	existing, err := s.releases.FindByTitleCaseInsensitive(ctx, title)
	if err != nil {
		return ReleaseResolution{}, fmt.Errorf("failed to resolve release: %w", err)
	}

	if existing != nil {
		return ReleaseResolution{
			ID:    existing.ID,
			Title: existing.Title,
		}, nil
	}

	release := &Release{
		Title:       title,
		ReleaseDate: utils.ResolveReleaseDate(metadata.ReleaseDate, metadata.ReleaseYear, s.now()),
		Formats:     mustJSONList([]string{string(FormatDigital)}),
	}

	if metadata.Label != "" {
		release.Labels = mustJSONList([]string{metadata.Label})
	} else {
		release.Labels = mustJSONList([]string{})
	}

	if metadata.CatalogNumber != "" {
		catalogNumber := metadata.CatalogNumber
		release.CatalogNumber = &catalogNumber
	}

	if metadata.CoverArtURL != "" {
		coverArtURL := metadata.CoverArtURL
		release.CoverArtURL = &coverArtURL
	}

	created, err := s.releases.Create(ctx, release)
	if err != nil {
		return ReleaseResolution{}, fmt.Errorf("failed to resolve release: %w", err)
	}

	log.Info("Created new release", "title", created.Title)

	return ReleaseResolution{
		ID:      created.ID,
		Title:   created.Title,
		Created: true,
	}, nil
}

func mustJSONList(values []string) datatypes.JSON {
	encoded, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(encoded)
}
