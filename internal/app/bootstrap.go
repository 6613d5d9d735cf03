package app

import (
	"fmt"
	"strings"

	"campus-start/internal/config"
	"campus-start/internal/delivery/http/middleware"
	"campus-start/internal/delivery/http/routes"
	v1 "campus-start/internal/delivery/http/routes/v1"
	"campus-start/internal/infrastructure/cache"
	"campus-start/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	go c.Hub.Run()

	deps := v1.Deps{
		Config:       cfg,
		DB:           c.DB,
		FeedCache:    c.Cache,
		FeedCacheTTL: cache.DefaultTTLFromEnv(),
		Notifier:     ws.NewFeedNotifier(c.Hub),
		Scorer:       c.Scorer,
		Assistant:    c.Assistant,
		Logger:       c.Logger,
	}

	registry := routes.NewRegistry(deps, ws.NewHandler(c.Hub, c.Logger))
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
