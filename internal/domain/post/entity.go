package post

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	ImageURL  string
	CreatedAt time.Time
}

type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Body      string
	CreatedAt time.Time
}

// FeedItem is a post enriched for the feed: author display fields, like ids
// normalized to strings, comments in chronological order.
type FeedItem struct {
	Post Post

	AuthorUsername    string
	AuthorProfileName string
	AuthorAvatarURL   string

	LikeUserIDs []string
	Comments    []FeedComment
}

type FeedComment struct {
	Comment Comment

	Username    string
	ProfileName string
	AvatarURL   string
}
