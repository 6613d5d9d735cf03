package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"campus-start/internal/domain/idea"

	"github.com/google/uuid"
)

type CreateIdeaInput struct {
	Title          string
	Description    string
	DomainTags     []string
	RequiredSkills []string
	RolesNeeded    []string
	TeamSize       int
}

type IdeaUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateIdeaInput) (idea.Idea, error)
	GetByID(ctx context.Context, id uuid.UUID) (idea.Idea, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]idea.Idea, error)
}

type Idea struct {
	ideas  idea.Repository
	logger *log.Logger
}

func NewIdeaUsecase(ideas idea.Repository, logger *log.Logger) *Idea {
	return &Idea{ideas: ideas, logger: logger}
}

func (u *Idea) Create(ctx context.Context, ownerID uuid.UUID, in CreateIdeaInput) (idea.Idea, error) {
	if ownerID == uuid.Nil {
		return idea.Idea{}, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Description) == "" {
		return idea.Idea{}, ErrInvalidInput
	}

	teamSize := in.TeamSize
	if teamSize <= 0 {
		teamSize = idea.DefaultTeamSize
	}

	i := idea.Idea{
		ID:             uuid.New(),
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		DomainTags:     trimAll(in.DomainTags),
		RequiredSkills: trimAll(in.RequiredSkills),
		RolesNeeded:    trimAll(in.RolesNeeded),
		TeamSize:       teamSize,
		CreatedBy:      ownerID,
	}

	if err := u.ideas.Create(ctx, i); err != nil {
		u.logf("create idea failed err=%v", err)
		return idea.Idea{}, ErrInternal
	}

	created, err := u.ideas.GetByID(ctx, i.ID)
	if err != nil {
		return idea.Idea{}, ErrInternal
	}
	return created, nil
}

func (u *Idea) GetByID(ctx context.Context, id uuid.UUID) (idea.Idea, error) {
	i, err := u.ideas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, idea.ErrNotFound) {
			return idea.Idea{}, ErrIdeaNotFound
		}
		return idea.Idea{}, ErrInternal
	}
	return i, nil
}

func (u *Idea) ListMine(ctx context.Context, ownerID uuid.UUID) ([]idea.Idea, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.ideas.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	if out == nil {
		out = []idea.Idea{}
	}
	return out, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (u *Idea) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf("[Idea] "+format, args...)
	}
}
