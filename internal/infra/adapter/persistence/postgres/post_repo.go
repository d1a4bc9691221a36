// Package postgres implements the repository interfaces on PostgreSQL.
// It is the writable document store behind the unified blog feed and
// the sink for worker-generated drafts.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"vmfit/internal/domain/entity"
	"vmfit/internal/repository"
)

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) repository.PostRepository {
	return &PostRepo{db: db}
}

// Origin identifies this provider in logs and metrics.
func (repo *PostRepo) Origin() entity.PostOrigin {
	return entity.OriginStore
}

// ListPosts returns up to limit posts, most recent first.
// Bodies are omitted from list queries to keep payloads small.
func (repo *PostRepo) ListPosts(ctx context.Context, limit int) ([]*entity.Post, error) {
	const query = `
SELECT id, title, slug, excerpt, image_url, image_alt_hint, created_at
FROM posts
ORDER BY created_at DESC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.Post, 0, limit)
	for rows.Next() {
		var post entity.Post
		var id int64
		if err := rows.Scan(&id, &post.Title, &post.Slug, &post.Excerpt,
			&post.ImageURL, &post.ImageAltHint, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListPosts: Scan: %w", err)
		}
		post.ID = strconv.FormatInt(id, 10)
		post.Origin = entity.OriginStore
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// GetPostBySlug returns the post with the given slug, body included.
// Returns (nil, nil) when no post matches.
func (repo *PostRepo) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	const query = `
SELECT id, title, slug, excerpt, content, image_url, image_alt_hint, created_at
FROM posts
WHERE slug = $1`
	var post entity.Post
	var id int64
	err := repo.db.QueryRowContext(ctx, query, slug).Scan(&id, &post.Title, &post.Slug,
		&post.Excerpt, &post.Body, &post.ImageURL, &post.ImageAltHint, &post.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetPostBySlug: %w", err)
	}
	post.ID = strconv.FormatInt(id, 10)
	post.Origin = entity.OriginStore
	return &post, nil
}

// CreatePost stores a new post and assigns its ID.
func (repo *PostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	const query = `
INSERT INTO posts (title, slug, excerpt, content, image_url, image_alt_hint, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query, post.Title, post.Slug, post.Excerpt,
		post.Body, post.ImageURL, post.ImageAltHint, post.CreatedAt).Scan(&id)
	if err != nil {
		return fmt.Errorf("CreatePost: %w", err)
	}
	post.ID = strconv.FormatInt(id, 10)
	post.Origin = entity.OriginStore
	return nil
}

// ExistsBySlug reports whether a post with the given slug already exists.
func (repo *PostRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return exists, nil
}
