// Package post provides HTTP handlers for the unified blog feed: listing
// merged posts and fetching a single post by slug.
package post

import (
	"time"

	"vmfit/internal/domain/entity"
)

// DTO is the JSON shape of a post.
type DTO struct {
	ID           string    `json:"id"`
	Origin       string    `json:"origin"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Body         string    `json:"body,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	ImageAltHint string    `json:"image_alt,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDTO(p *entity.Post) DTO {
	return DTO{
		ID:           p.ID,
		Origin:       string(p.Origin),
		Title:        p.Title,
		Slug:         p.Slug,
		Excerpt:      p.Excerpt,
		Body:         p.Body,
		ImageURL:     p.ImageURL,
		ImageAltHint: p.ImageAltHint,
		CreatedAt:    p.CreatedAt,
	}
}
