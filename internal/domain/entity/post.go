// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Post, Lead, and WorkoutPlan, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// PostOrigin identifies which content provider produced a post.
// The set of origins is closed; any other value is a programming error.
type PostOrigin string

const (
	// OriginShopBlog marks posts fetched from the hosted commerce-blog API.
	OriginShopBlog PostOrigin = "shop"

	// OriginStore marks posts stored in the local document store.
	OriginStore PostOrigin = "store"
)

// Post is the unified, provider-agnostic representation of a blog post.
// IDs are unique only within their origin provider; Slug is the external
// lookup key and is unique within a provider.
type Post struct {
	ID           string
	Origin       PostOrigin
	Title        string
	Slug         string
	Excerpt      string
	Body         string // populated only when fetching a single post by slug
	ImageURL     string
	ImageAltHint string
	CreatedAt    time.Time
}
