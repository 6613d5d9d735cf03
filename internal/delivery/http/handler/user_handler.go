package handler

import (
	"errors"

	"campus-start/internal/delivery/http/dto"
	"campus-start/internal/delivery/http/middleware"
	"campus-start/internal/pkg/response"
	"campus-start/internal/usecase"
	ucuser "campus-start/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateMeRequest struct {
	Name      *string   `json:"name"`
	Institute *string   `json:"institute"`
	Dept      *string   `json:"department"`
	Headline  *string   `json:"headline"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"dp"`
	Role      *string   `json:"role"`
	Skills    *[]string `json:"skills"`
	Interests *[]string `json:"interests"`
	Password  *string   `json:"password"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Patch("/me", h.UpdateMe)
	r.Get("/:user_id", h.GetByID)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(usr))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateMeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateMe(c.Context(), userID, ucuser.UpdateMeInput{
		ProfileName:   req.Name,
		InstituteName: req.Institute,
		Department:    req.Dept,
		Headline:      req.Headline,
		Bio:           req.Bio,
		AvatarURL:     req.AvatarURL,
		Role:          req.Role,
		Skills:        req.Skills,
		Interests:     req.Interests,
		Password:      req.Password,
	})
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(usr))
}

func (h *UserHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PublicUserProfileResponse(usr))
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucuser.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucuser.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
