package repositories

import (
	"context"
	"strings"

	"melodex/internal/database"
	. "melodex/internal/models"
	"melodex/internal/utils"
	"melodex/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtistRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	FindByNameCaseInsensitive(ctx context.Context, name string) (*Artist, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, artist *Artist) (*Artist, error)
}

type artistRepository struct {
	db  database.DB
	log logger.Logger
}

func NewArtistRepository(db database.DB) ArtistRepository {
	return &artistRepository{
		db:  db,
		log: logger.New("artistRepository"),
	}
}

func (r *artistRepository) GetByID(ctx context.Context, id uuid.UUID) (*Artist, error) {
	log := r.log.Function("GetByID")

	var artist Artist
	if err := r.db.SQLWithContext(ctx).First(&artist, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.Err("failed to get artist by ID", err, "id", id)
	}

	return &artist, nil
}

// FindByNameCaseInsensitive matches the display name first, then falls back to
// the split first/last name pair. The fallback covers artists stored before
// display names were recorded.
func (r *artistRepository) FindByNameCaseInsensitive(
	ctx context.Context,
	name string,
) (*Artist, error) {
	log := r.log.Function("FindByNameCaseInsensitive")

	trimmed := strings.TrimSpace(name)

	var artist Artist
	err := r.db.SQLWithContext(ctx).
		Where("LOWER(display_name) = LOWER(?)", trimmed).
		First(&artist).Error
	if err == nil {
		return &artist, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, log.Err("failed to find artist by display name", err, "name", trimmed)
	}

	parts := utils.ParseArtistName(trimmed)
	err = r.db.SQLWithContext(ctx).
		Where("LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)",
			parts.FirstName, parts.LastName).
		First(&artist).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.Err("failed to find artist by name parts", err, "name", trimmed)
	}

	return &artist, nil
}

func (r *artistRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	log := r.log.Function("SlugExists")

	var count int64
	if err := r.db.SQLWithContext(ctx).
		Model(&Artist{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, log.Err("failed to check artist slug", err, "slug", slug)
	}

	return count > 0, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *Artist) (*Artist, error) {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(artist).Error; err != nil {
		return nil, log.Err("failed to create artist", err, "displayName", artist.DisplayName)
	}

	return artist, nil
}
