package usecase

import (
	"context"
	"time"
)

// FeedCache sits in front of feed reads. Implementations degrade to cache
// misses when the backing store is down.
type FeedCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateFeed(ctx context.Context) error
}
