package idea

import (
	"time"

	"github.com/google/uuid"
)

const DefaultTeamSize = 3

// Idea is a startup concept with the skill and role requirements used as the
// matchmaking query. Read-only once created as far as matchmaking is
// concerned.
type Idea struct {
	ID             uuid.UUID
	Title          string
	Description    string
	DomainTags     []string
	RequiredSkills []string
	RolesNeeded    []string
	TeamSize       int
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
