package repositories

import (
	"context"
	"strings"

	"melodex/internal/database"
	. "melodex/internal/models"
	"melodex/pkg/logger"

	"gorm.io/gorm"
)

type ReleaseRepository interface {
	FindByTitleCaseInsensitive(ctx context.Context, title string) (*Release, error)
	Create(ctx context.Context, release *Release) (*Release, error)
}

type releaseRepository struct {
	db  database.DB
	log logger.Logger
}

func NewReleaseRepository(db database.DB) ReleaseRepository {
	return &releaseRepository{
		db:  db,
		log: logger.New("releaseRepository"),
	}
}

// FindByTitleCaseInsensitive returns the oldest release whose trimmed title
// matches, ignoring case. Titles are not unique; the first match wins.
func (r *releaseRepository) FindByTitleCaseInsensitive(
	ctx context.Context,
	title string,
) (*Release, error) {
	log := r.log.Function("FindByTitleCaseInsensitive")

	trimmed := strings.TrimSpace(title)

	var release Release
	err := r.db.SQLWithContext(ctx).
		Where("LOWER(TRIM(title)) = LOWER(?)", trimmed).
		Order("created_at ASC").
		First(&release).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.Err("failed to find release by title", err, "title", trimmed)
	}

	return &release, nil
}

func (r *releaseRepository) Create(ctx context.Context, release *Release) (*Release, error) {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(release).Error; err != nil {
		return nil, log.Err("failed to create release", err, "title", release.Title)
	}

	return release, nil
}
