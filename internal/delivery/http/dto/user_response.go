package dto

import (
	"time"

	"campus-start/internal/domain/user"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email,omitempty"`
	ProfileName   string    `json:"name"`
	InstituteName string    `json:"institute"`
	Department    string    `json:"department"`
	Headline      string    `json:"headline"`
	Bio           string    `json:"bio"`
	AvatarURL     string    `json:"dp"`
	Role          string    `json:"role"`
	Skills        []string  `json:"skills"`
	Interests     []string  `json:"interests"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserProfileResponse(u user.User) UserProfileResponse {
	return UserProfileResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		ProfileName:   u.ProfileName,
		InstituteName: u.InstituteName,
		Department:    u.Department,
		Headline:      u.Headline,
		Bio:           u.Bio,
		AvatarURL:     u.AvatarURL,
		Role:          string(u.Role),
		Skills:        emptyIfNil(u.Skills),
		Interests:     emptyIfNil(u.Interests),
		CreatedAt:     u.CreatedAt,
	}
}

// PublicUserProfileResponse hides the email for profiles other than the
// caller's own.
func PublicUserProfileResponse(u user.User) UserProfileResponse {
	out := NewUserProfileResponse(u)
	out.Email = ""
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
