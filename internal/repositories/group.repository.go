package repositories

import (
	"context"
	"strings"

	"melodex/internal/database"
	. "melodex/internal/models"
	"melodex/pkg/logger"

	"gorm.io/gorm"
)

type GroupRepository interface {
	FindByNameCaseInsensitive(ctx context.Context, name string) (*Group, error)
	Create(ctx context.Context, group *Group) (*Group, error)
}

type groupRepository struct {
	db  database.DB
	log logger.Logger
}

func NewGroupRepository(db database.DB) GroupRepository {
	return &groupRepository{
		db:  db,
		log: logger.New("groupRepository"),
	}
}

// FindByNameCaseInsensitive matches against both name and display_name.
func (r *groupRepository) FindByNameCaseInsensitive(
	ctx context.Context,
	name string,
) (*Group, error) {
	log := r.log.Function("FindByNameCaseInsensitive")

	trimmed := strings.TrimSpace(name)

	var group Group
	err := r.db.SQLWithContext(ctx).
		Where("LOWER(name) = LOWER(?) OR LOWER(display_name) = LOWER(?)", trimmed, trimmed).
		First(&group).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, log.Err("failed to find group by name", err, "name", trimmed)
	}

	return &group, nil
}

func (r *groupRepository) Create(ctx context.Context, group *Group) (*Group, error) {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(group).Error; err != nil {
		return nil, log.Err("failed to create group", err, "name", group.Name)
	}

	return group, nil
}
