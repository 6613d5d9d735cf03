package repository

import (
	"context"

	"campus-start/internal/database"
	"campus-start/internal/domain/post"

	"github.com/google/uuid"
)

type PostgresPostRepository struct {
	db database.DB
}

func NewPostgresPostRepository(db database.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) Create(ctx context.Context, p post.Post) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO posts (id, author_id, content, image_url) VALUES ($1, $2, $3, $4)`,
		p.ID, p.AuthorID, p.Content, p.ImageURL,
	)
	return err
}

func (r *PostgresPostRepository) GetFeedItem(ctx context.Context, id uuid.UUID) (post.FeedItem, error) {
	items, err := r.queryFeed(ctx,
		`SELECT p.id, p.author_id, p.content, p.image_url, p.created_at,
		        u.username, u.profile_name, u.avatar_url
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.id = $1`, id)
	if err != nil {
		return post.FeedItem{}, err
	}
	if len(items) == 0 {
		return post.FeedItem{}, post.ErrNotFound
	}
	return items[0], nil
}

func (r *PostgresPostRepository) ListFeed(ctx context.Context, limit, offset int) ([]post.FeedItem, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return r.queryFeed(ctx,
		`SELECT p.id, p.author_id, p.content, p.image_url, p.created_at,
		        u.username, u.profile_name, u.avatar_url
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 ORDER BY p.created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PostgresPostRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]post.FeedItem, error) {
	return r.queryFeed(ctx,
		`SELECT p.id, p.author_id, p.content, p.image_url, p.created_at,
		        u.username, u.profile_name, u.avatar_url
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.author_id = $1
		 ORDER BY p.created_at DESC`, authorID)
}

func (r *PostgresPostRepository) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, post.ErrNotFound
	}

	removed, err := r.db.Exec(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, err
	}
	if removed > 0 {
		return false, nil
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (post_id, user_id) DO NOTHING`, postID, userID)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresPostRepository) AddComment(ctx context.Context, c post.Comment) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO post_comments (id, post_id, user_id, body)
		 SELECT $1, $2, $3, $4 WHERE EXISTS (SELECT 1 FROM posts WHERE id = $2)`,
		c.ID, c.PostID, c.UserID, c.Body,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepository) queryFeed(ctx context.Context, query string, args ...any) ([]post.FeedItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]post.FeedItem, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var it post.FeedItem
		if err := rows.Scan(
			&it.Post.ID, &it.Post.AuthorID, &it.Post.Content, &it.Post.ImageURL,
			&it.Post.CreatedAt, &it.AuthorUsername, &it.AuthorProfileName, &it.AuthorAvatarURL,
		); err != nil {
			return nil, err
		}
		it.LikeUserIDs = make([]string, 0)
		it.Comments = make([]post.FeedComment, 0)
		items = append(items, it)
		ids = append(ids, it.Post.ID.String())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	byID := make(map[uuid.UUID]*post.FeedItem, len(items))
	for i := range items {
		byID[items[i].Post.ID] = &items[i]
	}

	if err := r.attachLikes(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.attachComments(ctx, ids, byID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresPostRepository) attachLikes(ctx context.Context, ids []string, byID map[uuid.UUID]*post.FeedItem) error {
	rows, err := r.db.Query(ctx,
		`SELECT post_id, user_id FROM post_likes
		 WHERE post_id = ANY($1::uuid[])
		 ORDER BY created_at ASC`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var postID, userID uuid.UUID
		if err := rows.Scan(&postID, &userID); err != nil {
			return err
		}
		if it, ok := byID[postID]; ok {
			it.LikeUserIDs = append(it.LikeUserIDs, userID.String())
		}
	}
	return rows.Err()
}

func (r *PostgresPostRepository) attachComments(ctx context.Context, ids []string, byID map[uuid.UUID]*post.FeedItem) error {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.post_id, c.user_id, c.body, c.created_at,
		        u.username, u.profile_name, u.avatar_url
		 FROM post_comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.post_id = ANY($1::uuid[])
		 ORDER BY c.created_at ASC`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var fc post.FeedComment
		if err := rows.Scan(
			&fc.Comment.ID, &fc.Comment.PostID, &fc.Comment.UserID,
			&fc.Comment.Body, &fc.Comment.CreatedAt,
			&fc.Username, &fc.ProfileName, &fc.AvatarURL,
		); err != nil {
			return err
		}
		if it, ok := byID[fc.Comment.PostID]; ok {
			it.Comments = append(it.Comments, fc)
		}
	}
	return rows.Err()
}

var _ post.Repository = (*PostgresPostRepository)(nil)
