package handler

import (
	"errors"
	"strconv"

	"campus-start/internal/delivery/http/dto"
	"campus-start/internal/delivery/http/middleware"
	"campus-start/internal/pkg/response"
	"campus-start/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PostHandler struct {
	uc usecase.PostUsecase
}

type createPostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image"`
}

type addCommentRequest struct {
	Body string `json:"body"`
}

func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

func (h *PostHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/feed", h.ListFeed)
	r.Post("/:post_id/like", h.ToggleLike)
	r.Post("/:post_id/comments", h.AddComment)
}

func (h *PostHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createPostRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Create(c.Context(), userID, usecase.CreatePostInput{Content: req.Content, ImageURL: req.ImageURL})
	if err != nil {
		return mapPostUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewFeedPostResponse(item))
}

func (h *PostHandler) ListFeed(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	items, err := h.uc.ListFeed(c.Context(), limit, offset)
	if err != nil {
		return mapPostUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFeedListResponse(items))
}

func (h *PostHandler) ToggleLike(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	liked, err := h.uc.ToggleLike(c.Context(), postID, userID)
	if err != nil {
		return mapPostUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"liked": liked})
}

func (h *PostHandler) AddComment(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req addCommentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.AddComment(c.Context(), postID, userID, req.Body)
	if err != nil {
		return mapPostUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewFeedPostResponse(item))
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func mapPostUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Post not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
