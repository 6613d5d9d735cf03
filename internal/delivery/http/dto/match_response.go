package dto

import "campus-start/internal/domain/matchmaking"

type MatchProfileResponse struct {
	UserID        string   `json:"userId"`
	Username      string   `json:"username"`
	ProfileName   string   `json:"name"`
	Headline      string   `json:"headline"`
	InstituteName string   `json:"institute"`
	AvatarURL     string   `json:"dp"`
	Role          string   `json:"role"`
	Skills        []string `json:"skills"`
	MatchScore    float64  `json:"matchScore"`
}

func NewMatchListResponse(profiles []matchmaking.MatchedProfile) []MatchProfileResponse {
	out := make([]MatchProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, MatchProfileResponse{
			UserID:        p.UserID,
			Username:      p.Username,
			ProfileName:   p.ProfileName,
			Headline:      p.Headline,
			InstituteName: p.InstituteName,
			AvatarURL:     p.AvatarURL,
			Role:          p.Role,
			Skills:        emptyIfNil(p.Skills),
			MatchScore:    p.MatchScore,
		})
	}
	return out
}
