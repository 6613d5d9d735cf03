package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the fixed set of roles a member declares on their profile.
type Role string

const (
	RoleFounder    Role = "Founder"
	RoleDeveloper  Role = "Developer"
	RoleDesigner   Role = "Designer"
	RoleMarketer   Role = "Marketer"
	RoleResearcher Role = "Researcher"
	RoleInvestor   Role = "Investor"
	RoleOther      Role = "Other"
)

var knownRoles = map[Role]bool{
	RoleFounder:    true,
	RoleDeveloper:  true,
	RoleDesigner:   true,
	RoleMarketer:   true,
	RoleResearcher: true,
	RoleInvestor:   true,
	RoleOther:      true,
}

// ParseRole normalizes free-form input; anything outside the enum maps to
// RoleOther rather than failing the write.
func ParseRole(raw string) Role {
	r := Role(strings.TrimSpace(raw))
	if knownRoles[r] {
		return r
	}
	for known := range knownRoles {
		if strings.EqualFold(string(known), string(r)) {
			return known
		}
	}
	return RoleOther
}

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string

	ProfileName   string
	InstituteName string
	Department    string
	Headline      string
	Bio           string
	AvatarURL     string

	Role      Role
	Skills    []string
	Interests []string

	// MatchProfileText is the denormalized scorer input. It is recomputed by
	// the profile usecase whenever Skills, Interests, Role, or Headline
	// change; readers must tolerate it being empty.
	MatchProfileText string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BuildMatchProfileText derives the scorer input text from the matching
// fields. It never fails; missing fields just contribute nothing.
func BuildMatchProfileText(skills, interests []string, role Role, headline string) string {
	parts := make([]string, 0, 4)
	if s := strings.TrimSpace(strings.Join(skills, " ")); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(strings.Join(interests, " ")); s != "" {
		parts = append(parts, s)
	}
	if r := strings.TrimSpace(string(role)); r != "" {
		parts = append(parts, r)
	}
	if h := strings.TrimSpace(headline); h != "" {
		parts = append(parts, h)
	}
	return strings.Join(parts, " ")
}
