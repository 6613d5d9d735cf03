package repository

import (
	"context"
	"errors"

	"campus-start/internal/database"
	"campus-start/internal/domain/idea"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresIdeaRepository struct {
	db database.DB
}

func NewPostgresIdeaRepository(db database.DB) *PostgresIdeaRepository {
	return &PostgresIdeaRepository{db: db}
}

const ideaColumns = `id, title, description, domain_tags, required_skills, roles_needed,
	team_size, created_by, created_at, updated_at`

func (r *PostgresIdeaRepository) Create(ctx context.Context, i idea.Idea) error {
	if i.TeamSize <= 0 {
		i.TeamSize = idea.DefaultTeamSize
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO ideas (
			id, title, description, domain_tags, required_skills, roles_needed,
			team_size, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		i.ID, i.Title, i.Description, textArray(i.DomainTags),
		textArray(i.RequiredSkills), textArray(i.RolesNeeded), i.TeamSize, i.CreatedBy,
	)
	return err
}

func (r *PostgresIdeaRepository) GetByID(ctx context.Context, id uuid.UUID) (idea.Idea, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+ideaColumns+` FROM ideas WHERE id = $1`, id)

	var i idea.Idea
	err := row.Scan(
		&i.ID, &i.Title, &i.Description, &i.DomainTags, &i.RequiredSkills,
		&i.RolesNeeded, &i.TeamSize, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return idea.Idea{}, idea.ErrNotFound
		}
		return idea.Idea{}, err
	}
	return i, nil
}

func (r *PostgresIdeaRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]idea.Idea, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+ideaColumns+` FROM ideas WHERE created_by = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]idea.Idea, 0)
	for rows.Next() {
		var i idea.Idea
		if err := rows.Scan(
			&i.ID, &i.Title, &i.Description, &i.DomainTags, &i.RequiredSkills,
			&i.RolesNeeded, &i.TeamSize, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

var _ idea.Repository = (*PostgresIdeaRepository)(nil)
