// Package repository defines the persistence and provider interfaces consumed
// by the use case layer. Implementations live under internal/infra.
package repository

import (
	"context"

	"vmfit/internal/domain/entity"
)

// PostProvider is a read-only source of blog posts.
// Both the hosted commerce-blog client and the local document store implement it.
type PostProvider interface {
	// ListPosts returns up to limit posts, most recent first.
	// Post bodies are not guaranteed to be populated by list queries.
	ListPosts(ctx context.Context, limit int) ([]*entity.Post, error)

	// GetPostBySlug returns the post with the given slug, body populated.
	// Returns (nil, nil) when no post matches.
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// Origin identifies the provider for logging and metrics.
	Origin() entity.PostOrigin
}

// PostRepository extends PostProvider with write access.
// Only the local document store is writable; the commerce blog is read-only.
type PostRepository interface {
	PostProvider

	// CreatePost stores a new post. The post's ID is assigned by the store.
	CreatePost(ctx context.Context, post *entity.Post) error

	// ExistsBySlug reports whether a post with the given slug already exists.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
