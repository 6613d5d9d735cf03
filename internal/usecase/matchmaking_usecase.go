package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"campus-start/internal/domain/idea"
	"campus-start/internal/domain/matchmaking"
	"campus-start/internal/domain/user"
	"campus-start/internal/infrastructure/scorer"

	"github.com/google/uuid"
)

const DefaultMatchTopN = 10

type MatchmakingUsecase interface {
	// RankCandidatesForIdea runs the full pipeline: candidate selection,
	// external scoring, truncation to top N, and the merge back against full
	// profiles. requesterID is authorization context only; it never affects
	// the ranking.
	RankCandidatesForIdea(ctx context.Context, ideaID, requesterID uuid.UUID) ([]matchmaking.MatchedProfile, error)
}

type Matchmaking struct {
	ideas  idea.Repository
	users  user.Repository
	scorer scorer.Client
	topN   int
	logger *log.Logger
}

func NewMatchmakingUsecase(ideas idea.Repository, users user.Repository, sc scorer.Client, topN int, logger *log.Logger) *Matchmaking {
	if topN <= 0 {
		topN = DefaultMatchTopN
	}
	return &Matchmaking{ideas: ideas, users: users, scorer: sc, topN: topN, logger: logger}
}

func (m *Matchmaking) RankCandidatesForIdea(ctx context.Context, ideaID, requesterID uuid.UUID) ([]matchmaking.MatchedProfile, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if ideaID == uuid.Nil {
		return nil, ErrIdeaNotFound
	}

	i, err := m.ideas.GetByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, idea.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}
		m.logf("idea lookup failed idea_id=%s err=%v", ideaID, err)
		return nil, ErrMatchmakingFailed
	}

	candidateIDs, err := m.selectCandidates(ctx, i)
	if err != nil {
		m.logf("candidate selection failed idea_id=%s err=%v", ideaID, err)
		return nil, ErrMatchmakingFailed
	}
	if len(candidateIDs) == 0 {
		// a valid outcome, not an error
		return []matchmaking.MatchedProfile{}, nil
	}

	candidates, err := m.loadCandidates(ctx, candidateIDs)
	if err != nil {
		m.logf("candidate load failed idea_id=%s err=%v", ideaID, err)
		return nil, ErrMatchmakingFailed
	}
	if len(candidates) == 0 {
		return []matchmaking.MatchedProfile{}, nil
	}

	scored, err := m.scorer.Rank(ctx, buildIdeaText(i), candidates)
	if err != nil {
		m.logf("scoring failed idea_id=%s candidates=%d err=%v", ideaID, len(candidates), err)
		return nil, ErrScoringServiceUnavailable
	}

	top := matchmaking.TruncateTopN(scored, m.topN)
	if len(top) == 0 {
		return []matchmaking.MatchedProfile{}, nil
	}

	resolveIDs := make([]uuid.UUID, 0, len(top))
	for _, s := range top {
		// ids the scorer invented or mangled cannot resolve; the merge drops
		// them rather than failing
		id, err := uuid.Parse(s.UserID)
		if err != nil {
			continue
		}
		resolveIDs = append(resolveIDs, id)
	}

	profiles, err := m.users.GetUsersByIDs(ctx, resolveIDs)
	if err != nil {
		m.logf("profile resolve failed idea_id=%s err=%v", ideaID, err)
		return nil, ErrMatchmakingFailed
	}

	return matchmaking.Merge(top, profiles), nil
}

// selectCandidates returns ids of users matching the idea's role or skill
// requirements. An idea with no stated roles and no required skills matches
// nobody; that is deliberate, not a wildcard.
func (m *Matchmaking) selectCandidates(ctx context.Context, i idea.Idea) ([]uuid.UUID, error) {
	if len(i.RolesNeeded) == 0 && len(i.RequiredSkills) == 0 {
		return nil, nil
	}
	return m.users.FindIDsByRoleOrSkills(ctx, i.RolesNeeded, i.RequiredSkills)
}

// loadCandidates pairs each candidate id with its stored matchProfileText.
// Missing or never-computed text degrades to the empty string.
func (m *Matchmaking) loadCandidates(ctx context.Context, ids []uuid.UUID) ([]matchmaking.Candidate, error) {
	profiles, err := m.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]matchmaking.Candidate, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, matchmaking.Candidate{
			UserID: p.ID.String(),
			Text:   p.MatchProfileText,
		})
	}
	return out, nil
}

func buildIdeaText(i idea.Idea) string {
	parts := make([]string, 0, 4)
	if s := strings.TrimSpace(i.Title); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(i.Description); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(strings.Join(i.RequiredSkills, " ")); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(strings.Join(i.DomainTags, " ")); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

func (m *Matchmaking) logf(format string, args ...any) {
	if m == nil || m.logger == nil {
		return
	}
	m.logger.Printf("[Matchmaking] "+format, args...)
}

var _ MatchmakingUsecase = (*Matchmaking)(nil)
