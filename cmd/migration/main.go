package main

import (
	"os"

	"melodex/config"
	"melodex/internal/database"
	. "melodex/internal/models"
	"melodex/pkg/logger"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	MIGRATION_PATH = "cmd/migration/migrations"
	MIGRATION_DB   = "postgres"
)

var MODELS_TO_MIGRATE = []any{
	&Artist{},
	&Group{},
	&Release{},
	&Track{},
	&ArtistRelease{},
	&TrackArtist{},
	&ArtistGroup{},
	&ReleaseTrack{},
}

func main() {
	log := logger.New("migrations").Function("main")

	config, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(config)
	if err != nil {
		log.Er("failed to create database", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Er("failed to close database", err)
		}
	}()

	sqlDB, err := db.SQL.DB()
	if err != nil {
		log.Er("failed to get raw database handle", err)
		os.Exit(1)
	}

	migrations := &migrate.FileMigrationSource{Dir: MIGRATION_PATH}
	applied, err := migrate.Exec(sqlDB, MIGRATION_DB, migrations, migrate.Up)
	if err != nil {
		log.Er("failed to run SQL migrations", err)
		os.Exit(1)
	}
	log.Info("Applied SQL migrations", "count", applied)

	for _, model := range MODELS_TO_MIGRATE {
		if err := db.SQL.AutoMigrate(model); err != nil {
			log.Er("failed to migrate model", err, "model", model)
			os.Exit(1)
		}
	}
	log.Info("Model migration completed")

	if err := createIndexes(db, log); err != nil {
		os.Exit(1)
	}

	log.Info("Database migration completed successfully")
}

// createIndexes creates indexes GORM does not derive from struct tags:
// expression indexes backing the case-insensitive resolver lookups.
func createIndexes(db database.DB, log logger.Logger) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_artists_display_lower ON artists(LOWER(display_name))",
		"CREATE INDEX IF NOT EXISTS idx_artists_name_parts_lower ON artists(LOWER(first_name), LOWER(last_name))",
		"CREATE INDEX IF NOT EXISTS idx_groups_name_lower ON groups(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_groups_display_lower ON groups(LOWER(display_name))",
		"CREATE INDEX IF NOT EXISTS idx_releases_title_lower ON releases(LOWER(TRIM(title)))",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
