package dto

import (
	"time"

	"campus-start/internal/domain/idea"

	"github.com/google/uuid"
)

type IdeaResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DomainTags     []string  `json:"domain"`
	RequiredSkills []string  `json:"required_skills"`
	RolesNeeded    []string  `json:"roles_needed"`
	TeamSize       int       `json:"team_size"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewIdeaResponse(i idea.Idea) IdeaResponse {
	return IdeaResponse{
		ID:             i.ID,
		Title:          i.Title,
		Description:    i.Description,
		DomainTags:     emptyIfNil(i.DomainTags),
		RequiredSkills: emptyIfNil(i.RequiredSkills),
		RolesNeeded:    emptyIfNil(i.RolesNeeded),
		TeamSize:       i.TeamSize,
		CreatedBy:      i.CreatedBy,
		CreatedAt:      i.CreatedAt,
	}
}

func NewIdeaListResponse(ideas []idea.Idea) []IdeaResponse {
	out := make([]IdeaResponse, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, NewIdeaResponse(i))
	}
	return out
}
