package handler

import (
	"errors"

	"campus-start/internal/delivery/http/dto"
	"campus-start/internal/delivery/http/middleware"
	"campus-start/internal/pkg/response"
	"campus-start/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchmakingUsecase
}

func NewMatchHandler(uc usecase.MatchmakingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/ideas")
	grp.Get("/:idea_id/matches", h.GetMatches)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ideaID, err := uuid.Parse(c.Params("idea_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	profiles, err := h.uc.RankCandidatesForIdea(c.Context(), ideaID, userID)
	if err != nil {
		return mapMatchmakingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(profiles))
}

func mapMatchmakingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrIdeaNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Idea not found", nil, err)
	case errors.Is(err, usecase.ErrScoringServiceUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Matching service unavailable", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrMatchmakingFailed):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
