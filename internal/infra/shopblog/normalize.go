package shopblog

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"vmfit/internal/domain/entity"
)

// excerptRuneLimit bounds excerpts derived from article HTML.
const excerptRuneLimit = 200

// articleRecord is the provider-native article shape.
type articleRecord struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Excerpt     string `json:"excerpt"`
	ContentHTML string `json:"contentHtml"`
	PublishedAt string `json:"publishedAt"`
	Image       *struct {
		URL     string `json:"url"`
		AltText string `json:"altText"`
	} `json:"image"`
}

// normalizeArticle converts a native article record into the unified Post
// shape. Title, handle, and publishedAt are required; records missing any of
// them are rejected. The body is carried only when includeBody is set.
func normalizeArticle(rec *articleRecord, includeBody bool) (*entity.Post, error) {
	if rec.Title == "" {
		return nil, fmt.Errorf("article %d has no title", rec.ID)
	}
	if rec.Handle == "" {
		return nil, fmt.Errorf("article %d has no handle", rec.ID)
	}

	publishedAt, err := time.Parse(time.RFC3339, rec.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("article %d publishedAt: %w", rec.ID, err)
	}

	excerpt := rec.Excerpt
	if excerpt == "" {
		excerpt = excerptFromHTML(rec.ContentHTML)
	}

	post := &entity.Post{
		ID:        fmt.Sprintf("%d", rec.ID),
		Origin:    entity.OriginShopBlog,
		Title:     rec.Title,
		Slug:      rec.Handle,
		Excerpt:   excerpt,
		CreatedAt: publishedAt,
	}
	if rec.Image != nil && entity.ValidateImageURL(rec.Image.URL) == nil {
		post.ImageURL = rec.Image.URL
		post.ImageAltHint = rec.Image.AltText
	}
	if includeBody {
		post.Body = rec.ContentHTML
	}
	return post, nil
}

// excerptFromHTML derives a plain-text excerpt from article HTML.
// Returns an empty string when the HTML yields no text.
func excerptFromHTML(rawHTML string) string {
	if rawHTML == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if len(runes) <= excerptRuneLimit {
		return text
	}

	truncated := string(runes[:excerptRuneLimit])
	// Cut at the last word boundary so the excerpt does not end mid-word.
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + "…"
}
