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

type AssistantHandler struct {
	uc usecase.AssistantUsecase
}

type askRequest struct {
	Query string `json:"query"`
}

func NewAssistantHandler(uc usecase.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

func (h *AssistantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/ideas/:idea_id/assistant")
	grp.Post("/", h.Ask)
	grp.Get("/", h.History)
}

func (h *AssistantHandler) Ask(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ideaID, err := uuid.Parse(c.Params("idea_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req askRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	reply, err := h.uc.Ask(c.Context(), ideaID, userID, req.Query)
	if err != nil {
		return mapAssistantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AssistantReplyResponse{Reply: reply})
}

func (h *AssistantHandler) History(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ideaID, err := uuid.Parse(c.Params("idea_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	conv, err := h.uc.History(c.Context(), ideaID, userID)
	if err != nil {
		return mapAssistantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewConversationResponse(conv))
}

func mapAssistantUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrIdeaNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Idea not found", nil, err)
	case errors.Is(err, usecase.ErrAssistantUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Assistant unavailable", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
