package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("post not found")

type Repository interface {
	Create(ctx context.Context, p Post) error
	GetFeedItem(ctx context.Context, id uuid.UUID) (FeedItem, error)
	ListFeed(ctx context.Context, limit, offset int) ([]FeedItem, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]FeedItem, error)

	// ToggleLike flips userID's like on the post and reports whether the post
	// is liked after the call.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	AddComment(ctx context.Context, c Comment) error
}
