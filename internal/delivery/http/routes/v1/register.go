package v1

import (
	"log"
	"time"

	"campus-start/internal/config"
	"campus-start/internal/database"
	"campus-start/internal/delivery/http/handler"
	"campus-start/internal/delivery/http/middleware"
	"campus-start/internal/infrastructure/assistant"
	"campus-start/internal/infrastructure/scorer"
	"campus-start/internal/pkg/jwt"
	"campus-start/internal/repository"
	"campus-start/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure the v1 routes are built on.
type Deps struct {
	Config       config.Config
	DB           database.DB
	FeedCache    usecase.FeedCache
	FeedCacheTTL time.Duration
	Notifier     usecase.FeedNotifier
	Scorer       scorer.Client
	Assistant    assistant.Assistant
	Logger       *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	ideaRepo := repository.NewPostgresIdeaRepository(d.DB)
	postRepo := repository.NewPostgresPostRepository(d.DB)
	convRepo := repository.NewPostgresConversationRepository(d.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	ideaUC := usecase.NewIdeaUsecase(ideaRepo, d.Logger)
	postUC := usecase.NewPostUsecase(postRepo, d.FeedCache, d.Notifier, d.FeedCacheTTL, d.Logger)
	matchUC := usecase.NewMatchmakingUsecase(ideaRepo, userRepo, d.Scorer, d.Config.Matchmaking.TopN, d.Logger)
	assistantUC := usecase.NewAssistantUsecase(ideaRepo, convRepo, d.Assistant, d.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	ideaHandler := handler.NewIdeaHandler(ideaUC)
	postHandler := handler.NewPostHandler(postUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	assistantHandler := handler.NewAssistantHandler(assistantUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	usersGroup := protected.Group("/users")
	userHandler.RegisterRoutes(usersGroup)

	ideasGroup := protected.Group("/ideas")
	ideaHandler.RegisterRoutes(ideasGroup)

	postsGroup := protected.Group("/posts")
	postHandler.RegisterRoutes(postsGroup)

	matchHandler.RegisterRoutes(protected)
	assistantHandler.RegisterRoutes(protected)
}
