// Package matchmaking holds the pure data types and functions of the
// candidate ranking pipeline. Identifiers here are canonical strings, the
// representation the external scorer speaks; callers convert store UUIDs at
// the edge.
package matchmaking

// Candidate pairs a user id with the text the scorer ranks. It lives only
// for the duration of one matchmaking request.
type Candidate struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// ScoredResult is one entry of the scorer's ranked output. The sequence
// order is the ranking; it is preserved verbatim through the pipeline.
type ScoredResult struct {
	UserID string  `json:"userId"`
	Score  float64 `json:"score"`
}

// MatchedProfile is the externally visible result row: presentation fields
// of a user plus the score the external service assigned, in scorer order.
type MatchedProfile struct {
	UserID        string  `json:"userId"`
	Username      string  `json:"username"`
	ProfileName   string  `json:"profileName"`
	Headline      string  `json:"headline"`
	InstituteName string  `json:"instituteName"`
	AvatarURL     string  `json:"dp"`
	Role          string  `json:"role"`
	Skills        []string `json:"skills"`
	MatchScore    float64 `json:"matchScore"`
}
