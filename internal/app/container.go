package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"campus-start/internal/config"
	"campus-start/internal/database"
	"campus-start/internal/database/migration"
	dbpostgres "campus-start/internal/database/postgres"
	"campus-start/internal/infrastructure/assistant"
	"campus-start/internal/infrastructure/cache"
	"campus-start/internal/infrastructure/scorer"
	"campus-start/internal/ws"
)

type Container struct {
	Config    config.Config
	DB        database.DB
	Cache     *cache.Redis
	Hub       *ws.Hub
	Scorer    scorer.Client
	Assistant assistant.Assistant
	Logger    *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if dir := migrationsDir(); dir != "" {
		runner := migration.Runner{Dir: dir}
		if err := runner.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	var geminiSvc assistant.Assistant
	if cfg.Assistant.GeminiAPIKey != "" {
		geminiSvc, err = assistant.NewGemini(ctx, cfg.Assistant.GeminiAPIKey, cfg.Assistant.Model)
		if err != nil {
			logger.Printf("[App] assistant disabled err=%v", err)
			geminiSvc = nil
		}
	}

	return &Container{
		Config:    cfg,
		DB:        db,
		Cache:     cache.NewRedis(logger),
		Hub:       ws.NewHub(logger),
		Scorer:    scorer.NewClient(cfg.Scorer.BaseURL, cfg.Scorer.Timeout, logger),
		Assistant: geminiSvc,
		Logger:    logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func migrationsDir() string {
	dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if dir != "" {
		return dir
	}
	if _, err := os.Stat("migrations"); err == nil {
		return "migrations"
	}
	return ""
}
