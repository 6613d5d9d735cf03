package routes

import (
	"campus-start/internal/delivery/http/handler"
	v1 "campus-start/internal/delivery/http/routes/v1"
	"campus-start/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps      v1.Deps
	health    *handler.HealthHandler
	wsHandler *ws.Handler
}

func NewRegistry(deps v1.Deps, wsHandler *ws.Handler) *Registry {
	return &Registry{
		deps:      deps,
		health:    handler.NewHealthHandler(deps.DB),
		wsHandler: wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)

	if r.wsHandler != nil {
		app.Get("/ws/feed", r.wsHandler.HandleFeedWS)
	}
}
