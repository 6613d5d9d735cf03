package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateUser(ctx context.Context, u User) error

	// GetUsersByIDs returns the users that still resolve; ids with no record
	// are simply absent from the result. Order is not guaranteed.
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)

	// FindIDsByRoleOrSkills returns ids of users whose role is one of roles
	// or whose skills overlap skills. Empty inputs match nothing.
	FindIDsByRoleOrSkills(ctx context.Context, roles []string, skills []string) ([]uuid.UUID, error)
}
