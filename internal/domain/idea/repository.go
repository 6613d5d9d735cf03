package idea

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("idea not found")

type Repository interface {
	Create(ctx context.Context, i Idea) error
	GetByID(ctx context.Context, id uuid.UUID) (Idea, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Idea, error)
}
