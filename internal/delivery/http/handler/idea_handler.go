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

type IdeaHandler struct {
	uc usecase.IdeaUsecase
}

type createIdeaRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	DomainTags     []string `json:"domain"`
	RequiredSkills []string `json:"required_skills"`
	RolesNeeded    []string `json:"roles_needed"`
	TeamSize       int      `json:"team_size"`
}

func NewIdeaHandler(uc usecase.IdeaUsecase) *IdeaHandler {
	return &IdeaHandler{uc: uc}
}

func (h *IdeaHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/mine", h.ListMine)
	r.Get("/:idea_id", h.GetByID)
}

func (h *IdeaHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createIdeaRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), userID, usecase.CreateIdeaInput{
		Title:          req.Title,
		Description:    req.Description,
		DomainTags:     req.DomainTags,
		RequiredSkills: req.RequiredSkills,
		RolesNeeded:    req.RolesNeeded,
		TeamSize:       req.TeamSize,
	})
	if err != nil {
		return mapIdeaUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewIdeaResponse(created))
}

func (h *IdeaHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ideas, err := h.uc.ListMine(c.Context(), userID)
	if err != nil {
		return mapIdeaUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewIdeaListResponse(ideas))
}

func (h *IdeaHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("idea_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	i, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapIdeaUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewIdeaResponse(i))
}

func mapIdeaUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrIdeaNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Idea not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
