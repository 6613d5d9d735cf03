package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"campus-start/internal/database"
)

type IdeaSeeder struct{}

func (IdeaSeeder) Name() string { return "ideas" }

// Run depends on UserSeeder having inserted the demo founders.
func (IdeaSeeder) Run(ctx context.Context, db database.DB) error {
	ownerID, err := findUserID(ctx, db, "rahul_founder")
	if err != nil {
		return err
	}

	demo := []struct {
		Title          string
		Description    string
		DomainTags     []string
		RequiredSkills []string
		RolesNeeded    []string
		TeamSize       int
	}{
		{
			Title:          "Campus canteen delivery",
			Description:    "Hyperlocal food delivery between hostel blocks and campus canteens, run by students.",
			DomainTags:     []string{"logistics", "food"},
			RequiredSkills: []string{"Go", "React"},
			RolesNeeded:    []string{"Developer", "Designer"},
			TeamSize:       4,
		},
		{
			Title:          "Peer notes exchange",
			Description:    "A marketplace for course notes and past papers with reputation-based quality signals.",
			DomainTags:     []string{"edtech"},
			RequiredSkills: []string{"React", "PostgreSQL"},
			RolesNeeded:    []string{"Developer", "Marketer"},
			TeamSize:       3,
		},
	}

	for _, d := range demo {
		_, err := db.Exec(ctx,
			`INSERT INTO ideas (title, description, domain_tags, required_skills, roles_needed, team_size, created_by)
			SELECT $1, $2, $3::text[], $4::text[], $5::text[], $6, $7
			WHERE NOT EXISTS (SELECT 1 FROM ideas WHERE title = $1 AND created_by = $7)`,
			d.Title, d.Description, d.DomainTags, d.RequiredSkills, d.RolesNeeded, d.TeamSize, ownerID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func findUserID(ctx context.Context, db database.DB, username string) (uuid.UUID, error) {
	row := db.QueryRow(ctx, `SELECT id FROM users WHERE username = $1 LIMIT 1`, username)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("find user %s: %w", username, err)
	}
	return id, nil
}
