package app

import (
	"melodex/config"
	"melodex/internal/database"
	"melodex/internal/events"
	"melodex/internal/handlers/middleware"
	"melodex/internal/jobs"
	"melodex/internal/repositories"
	"melodex/internal/services"
	"melodex/pkg/logger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	EventBus   *events.EventBus
	Config     config.Config

	// Services
	TransactionService *services.TransactionService
	IngestService      *services.IngestService
	SchedulerService   *services.SchedulerService

	// Repositories
	Repository repositories.Repository
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Cache.Events, config)

	repos := repositories.New(db)

	transactionService := services.NewTransactionService(db)
	slugService := services.NewSlugService()

	artistResolver := services.NewArtistResolverService(repos.Artist, repos.Association, slugService)
	groupResolver := services.NewGroupResolverService(repos.Group, repos.Association)
	releaseResolver := services.NewReleaseResolverService(repos.Release)

	auditService := services.NewAuditService(eventBus)
	cacheInvalidationService := services.NewCacheInvalidationService(db, eventBus)

	ingestService := services.NewIngestService(
		transactionService,
		artistResolver,
		groupResolver,
		releaseResolver,
		repos.Track,
		repos.Association,
		auditService,
		cacheInvalidationService,
	)

	schedulerService := services.NewSchedulerService()
	uploadCleanupService := services.NewUploadCleanupService(repos.Track, config.UploadRetentionDays)
	if err := schedulerService.AddJob(
		jobs.NewUploadCleanupJob(uploadCleanupService, services.Daily),
	); err != nil {
		return &App{}, log.Err("failed to register upload cleanup job", err)
	}
	schedulerService.Start()

	appMiddleware := middleware.New(db, eventBus, config)

	return &App{
		Database:           db,
		Middleware:         appMiddleware,
		EventBus:           eventBus,
		Config:             config,
		TransactionService: transactionService,
		IngestService:      ingestService,
		SchedulerService:   schedulerService,
		Repository:         repos,
	}, nil
}

func (a *App) Close() error {
	log := logger.New("app").Function("Close")

	if a.SchedulerService != nil {
		a.SchedulerService.Stop()
	}

	if a.EventBus != nil {
		a.EventBus.Close()
	}

	if err := a.Database.Close(); err != nil {
		return log.Err("failed to close database", err)
	}

	return nil
}
