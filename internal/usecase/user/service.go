package user

import (
	"context"
	"errors"
	"strings"

	"campus-start/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

// UpdateMeInput uses pointers so a handler can distinguish "leave alone"
// from "set to empty".
type UpdateMeInput struct {
	ProfileName   *string
	InstituteName *string
	Department    *string
	Headline      *string
	Bio           *string
	AvatarURL     *string
	Role          *string
	Skills        *[]string
	Interests     *[]string
	Password      *string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) GetByID(ctx context.Context, userID uuid.UUID) (user.User, error) {
	return s.GetMe(ctx, userID)
}

func (s *Service) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	matchFieldsChanged := false

	if in.ProfileName != nil {
		usr.ProfileName = strings.TrimSpace(*in.ProfileName)
	}
	if in.InstituteName != nil {
		usr.InstituteName = strings.TrimSpace(*in.InstituteName)
	}
	if in.Department != nil {
		usr.Department = strings.TrimSpace(*in.Department)
	}
	if in.Bio != nil {
		usr.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.AvatarURL != nil {
		usr.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}
	if in.Headline != nil {
		usr.Headline = strings.TrimSpace(*in.Headline)
		matchFieldsChanged = true
	}
	if in.Role != nil {
		usr.Role = user.ParseRole(*in.Role)
		matchFieldsChanged = true
	}
	if in.Skills != nil {
		usr.Skills = cleanList(*in.Skills)
		matchFieldsChanged = true
	}
	if in.Interests != nil {
		usr.Interests = cleanList(*in.Interests)
		matchFieldsChanged = true
	}
	if in.Password != nil {
		pw := strings.TrimSpace(*in.Password)
		if len(pw) < 8 {
			return user.User{}, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrInternal
		}
		usr.PasswordHash = string(hash)
	}

	// keep the denormalized scorer text in step with the fields it is
	// derived from; recomputation itself cannot fail
	if matchFieldsChanged {
		usr.MatchProfileText = user.BuildMatchProfileText(usr.Skills, usr.Interests, usr.Role, usr.Headline)
	}

	if err := s.users.UpdateUser(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
