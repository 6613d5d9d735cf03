package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"campus-start/internal/domain/post"

	"github.com/google/uuid"
)

// FeedNotifier pushes a lightweight signal to connected clients when the
// feed changes. A nil notifier is a no-op.
type FeedNotifier interface {
	NotifyFeedUpdated(postID string)
}

type CreatePostInput struct {
	Content  string
	ImageURL string
}

type PostUsecase interface {
	Create(ctx context.Context, authorID uuid.UUID, in CreatePostInput) (post.FeedItem, error)
	ListFeed(ctx context.Context, limit, offset int) ([]post.FeedItem, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]post.FeedItem, error)
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	AddComment(ctx context.Context, postID, userID uuid.UUID, body string) (post.FeedItem, error)
}

type Posts struct {
	posts    post.Repository
	cache    FeedCache
	notifier FeedNotifier
	cacheTTL time.Duration
	logger   *log.Logger
}

func NewPostUsecase(posts post.Repository, cache FeedCache, notifier FeedNotifier, cacheTTL time.Duration, logger *log.Logger) *Posts {
	return &Posts{posts: posts, cache: cache, notifier: notifier, cacheTTL: cacheTTL, logger: logger}
}

func (u *Posts) Create(ctx context.Context, authorID uuid.UUID, in CreatePostInput) (post.FeedItem, error) {
	if authorID == uuid.Nil {
		return post.FeedItem{}, ErrUnauthorized
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return post.FeedItem{}, ErrInvalidInput
	}

	p := post.Post{
		ID:       uuid.New(),
		AuthorID: authorID,
		Content:  content,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
	if err := u.posts.Create(ctx, p); err != nil {
		u.logf("create post failed err=%v", err)
		return post.FeedItem{}, ErrInternal
	}

	created, err := u.posts.GetFeedItem(ctx, p.ID)
	if err != nil {
		return post.FeedItem{}, ErrInternal
	}

	u.invalidateFeed(ctx)
	if u.notifier != nil {
		u.notifier.NotifyFeedUpdated(p.ID.String())
	}
	return created, nil
}

func (u *Posts) ListFeed(ctx context.Context, limit, offset int) ([]post.FeedItem, error) {
	key := feedCacheKey(limit, offset)

	if u.cache != nil {
		var cached []post.FeedItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.posts.ListFeed(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	if items == nil {
		items = []post.FeedItem{}
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, u.cacheTTL); err != nil {
			u.logf("feed cache set failed key=%s err=%v", key, err)
		}
	}
	return items, nil
}

func (u *Posts) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]post.FeedItem, error) {
	if authorID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := u.posts.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, ErrInternal
	}
	if items == nil {
		items = []post.FeedItem{}
	}
	return items, nil
}

func (u *Posts) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrUnauthorized
	}
	liked, err := u.posts.ToggleLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return false, ErrPostNotFound
		}
		return false, ErrInternal
	}
	u.invalidateFeed(ctx)
	return liked, nil
}

func (u *Posts) AddComment(ctx context.Context, postID, userID uuid.UUID, body string) (post.FeedItem, error) {
	if userID == uuid.Nil {
		return post.FeedItem{}, ErrUnauthorized
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return post.FeedItem{}, ErrInvalidInput
	}

	c := post.Comment{
		ID:     uuid.New(),
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := u.posts.AddComment(ctx, c); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return post.FeedItem{}, ErrPostNotFound
		}
		return post.FeedItem{}, ErrInternal
	}

	u.invalidateFeed(ctx)

	item, err := u.posts.GetFeedItem(ctx, postID)
	if err != nil {
		return post.FeedItem{}, ErrInternal
	}
	return item, nil
}

func (u *Posts) invalidateFeed(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateFeed(ctx); err != nil {
		u.logf("feed cache invalidate failed err=%v", err)
	}
}

func feedCacheKey(limit, offset int) string {
	return fmt.Sprintf("feed:list:%d:%d", limit, offset)
}

func (u *Posts) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf("[Post] "+format, args...)
	}
}
