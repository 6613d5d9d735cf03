package matchmaking

import "campus-start/internal/domain/user"

// TruncateTopN caps scored to its first n entries in the order the scorer
// returned them. No local re-sorting: the scorer's ranking is trusted as-is.
func TruncateTopN(scored []ScoredResult, n int) []ScoredResult {
	if n <= 0 || len(scored) == 0 {
		return nil
	}
	if len(scored) <= n {
		return scored
	}
	return scored[:n]
}

// Merge joins scored results back against full user records, preserving the
// scored order exactly and attaching each score verbatim. An entry whose
// user id resolves to no record is dropped silently; the remaining entries
// keep their relative order, so the output may be shorter than the input.
func Merge(scored []ScoredResult, profiles []user.User) []MatchedProfile {
	byID := make(map[string]user.User, len(profiles))
	for _, p := range profiles {
		byID[p.ID.String()] = p
	}

	out := make([]MatchedProfile, 0, len(scored))
	for _, s := range scored {
		p, ok := byID[s.UserID]
		if !ok {
			continue
		}
		out = append(out, MatchedProfile{
			UserID:        p.ID.String(),
			Username:      p.Username,
			ProfileName:   p.ProfileName,
			Headline:      p.Headline,
			InstituteName: p.InstituteName,
			AvatarURL:     p.AvatarURL,
			Role:          string(p.Role),
			Skills:        p.Skills,
			MatchScore:    s.Score,
		})
	}
	return out
}
