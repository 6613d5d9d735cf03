package repository

import (
	"context"
	"errors"

	"campus-start/internal/database"
	"campus-start/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, profile_name, institute_name,
	department, headline, bio, avatar_url, role, skills, interests,
	match_profile_text, created_at, updated_at`

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (
			id, username, email, password_hash, profile_name, institute_name,
			department, headline, bio, avatar_url, role, skills, interests,
			match_profile_text
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.ProfileName, u.InstituteName,
		u.Department, u.Headline, u.Bio, u.AvatarURL, string(u.Role),
		textArray(u.Skills), textArray(u.Interests), u.MatchProfileText,
	)
	return err
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, u user.User) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET
			username = $2, email = $3, password_hash = $4, profile_name = $5,
			institute_name = $6, department = $7, headline = $8, bio = $9,
			avatar_url = $10, role = $11, skills = $12, interests = $13,
			match_profile_text = $14, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.ProfileName,
		u.InstituteName, u.Department, u.Headline, u.Bio,
		u.AvatarURL, string(u.Role), textArray(u.Skills), textArray(u.Interests),
		u.MatchProfileText,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrs = append(idStrs, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1::uuid[])`, idStrs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0, len(ids))
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PostgresUserRepository) FindIDsByRoleOrSkills(ctx context.Context, roles []string, skills []string) ([]uuid.UUID, error) {
	if len(roles) == 0 && len(skills) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id FROM users
		 WHERE role = ANY($1::text[]) OR skills && $2::text[]`,
		textArray(roles), textArray(skills),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfileName,
		&u.InstituteName, &u.Department, &u.Headline, &u.Bio, &u.AvatarURL,
		&role, &u.Skills, &u.Interests, &u.MatchProfileText,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

func scanUserRows(rows database.Rows) (user.User, error) {
	var u user.User
	var role string
	err := rows.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfileName,
		&u.InstituteName, &u.Department, &u.Headline, &u.Bio, &u.AvatarURL,
		&role, &u.Skills, &u.Interests, &u.MatchProfileText,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

// textArray keeps nil slices out of the driver; an empty text[] is what the
// schema defaults expect.
func textArray(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

var _ user.Repository = (*PostgresUserRepository)(nil)
