package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/notification/telegram"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	"jobboard/internal/ws"
)

// Container wires the process dependencies once at startup: store, cache,
// notification sink, event hub, and the use cases on top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB       database.DB
	Cache    *cache.Redis
	Telegram *telegram.Client
	Hub      *ws.Hub

	Lifecycle usecase.LifecycleUsecase
	Listing   usecase.ListingUsecase
	Auth      usecase.AuthUsecase
	JWT       jwt.Service
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	// Explicit initialization phase: schema first, demo seed second, all
	// before the listener accepts traffic.
	if err := seeder.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	tg := telegram.NewClient(cfg.Telegram, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	events := ws.NewPublisher(hub)

	jobs := repository.NewPostgresJobRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Telegram:  tg,
		Hub:       hub,
		Lifecycle: usecase.NewLifecycleUsecase(jobs, tg, events, redisCache, logger, cfg.Notify.ReannounceApproved),
		Listing:   usecase.NewListingUsecase(jobs, redisCache, logger, cfg.Redis.CacheTTL),
		Auth:      usecase.NewAuthUsecase(cfg.Admin.Username, cfg.Admin.PasswordHash, jwtSvc),
		JWT:       jwtSvc,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
