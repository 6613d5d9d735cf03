package dto

import (
	"time"

	"campus-start/internal/domain/post"

	"github.com/google/uuid"
)

type FeedPostResponse struct {
	ID              uuid.UUID             `json:"id"`
	Content         string                `json:"content"`
	ImageURL        string                `json:"image,omitempty"`
	AuthorID        uuid.UUID             `json:"author_id"`
	AuthorUsername  string                `json:"author_username"`
	AuthorName      string                `json:"author_name"`
	AuthorAvatarURL string                `json:"author_dp"`
	Likes           []string              `json:"likes"`
	Comments        []FeedCommentResponse `json:"comments"`
	CreatedAt       time.Time             `json:"created_at"`
}

type FeedCommentResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"dp"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFeedPostResponse(it post.FeedItem) FeedPostResponse {
	comments := make([]FeedCommentResponse, 0, len(it.Comments))
	for _, c := range it.Comments {
		comments = append(comments, FeedCommentResponse{
			ID:        c.Comment.ID,
			UserID:    c.Comment.UserID,
			Username:  c.Username,
			Name:      c.ProfileName,
			AvatarURL: c.AvatarURL,
			Body:      c.Comment.Body,
			CreatedAt: c.Comment.CreatedAt,
		})
	}

	likes := it.LikeUserIDs
	if likes == nil {
		likes = []string{}
	}

	return FeedPostResponse{
		ID:              it.Post.ID,
		Content:         it.Post.Content,
		ImageURL:        it.Post.ImageURL,
		AuthorID:        it.Post.AuthorID,
		AuthorUsername:  it.AuthorUsername,
		AuthorName:      it.AuthorProfileName,
		AuthorAvatarURL: it.AuthorAvatarURL,
		Likes:           likes,
		Comments:        comments,
		CreatedAt:       it.Post.CreatedAt,
	}
}

func NewFeedListResponse(items []post.FeedItem) []FeedPostResponse {
	out := make([]FeedPostResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewFeedPostResponse(it))
	}
	return out
}
