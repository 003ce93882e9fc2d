package main

import (
	"context"
	"crypto/tls"

	"github.com/axionlabs/axion-backend/config"
	"github.com/axionlabs/axion-backend/handlers"
	"github.com/axionlabs/axion-backend/internal/store/postgres"
	"github.com/axionlabs/axion-backend/logger"
	"github.com/axionlabs/axion-backend/middleware"
	"github.com/axionlabs/axion-backend/router"
	"github.com/axionlabs/axion-backend/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.ConnString())
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	if cfg.IsProduction() {
		poolConfig.ConnConfig.TLSConfig = &tls.Config{
			ServerName: cfg.Database.Host,
			MinVersion: tls.VersionTLS12,
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.IsProduction() {
		redisOptions.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(redisOptions)

	validator, err := middleware.NewJWTValidator(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize JWT validator: %v", err)
	}

	emailService := services.NewEmailService(&cfg.Email)

	deps := router.Dependencies{
		Config:          cfg,
		JWTValidator:    validator,
		RedisClient:     redisClient,
		ServiceHandler:  handlers.NewServiceHandler(postgres.NewServiceStore(pool)),
		ProjectHandler:  handlers.NewProjectHandler(postgres.NewProjectStore(pool)),
		ArticleHandler:  handlers.NewArticleHandler(postgres.NewArticleStore(pool)),
		EventHandler:    handlers.NewEventHandler(postgres.NewEventStore(pool)),
		GalleryHandler:  handlers.NewGalleryHandler(postgres.NewGalleryStore(pool)),
		FeedbackHandler: handlers.NewFeedbackHandler(postgres.NewFeedbackStore(pool)),
		ContactHandler:  handlers.NewContactHandler(postgres.NewContactStore(pool), emailService),
		HealthHandler:   handlers.NewHealthHandler(pool, redisClient),
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
