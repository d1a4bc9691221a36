// Package blog implements the scheduled blog-draft generation job.
// Each run picks the next topic in rotation, generates a structured draft,
// and persists it into the document store behind the content feed.
package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vmfit/internal/domain/entity"
	"vmfit/internal/infra/generator"
	"vmfit/internal/repository"
	"vmfit/internal/resilience/retry"
)

// ErrNoFreshTopic indicates every topic in the rotation already has a
// published post, so the run produced nothing.
var ErrNoFreshTopic = errors.New("all topics already published")

// draftPrompt produces one publish-ready article.
var draftPrompt = generator.Prompt{
	Name: "blog-draft",
	Template: `You are writing for a fitness coaching blog read by {{audience}}.
Write an article titled "{{title}}". Angle: {{angle}}.
Write 500-800 words of practical, evidence-aware advice in plain language.
The content field must contain the full article body as HTML paragraphs.`,
}

var draftSchema = generator.Object(map[string]*generator.Schema{
	"title":   generator.String(),
	"excerpt": generator.String(),
	"content": generator.String(),
})

// draftDocument is the wire shape of a generated draft.
type draftDocument struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// Service provides the blog draft generation use case.
type Service struct {
	Generator generator.Generator
	Repo      repository.PostRepository
	Topics    []Topic
	Logger    *slog.Logger
	Retry     retry.Config

	// now is overridable for tests.
	now func() time.Time
}

// NewService creates a blog service with the standard generation retry policy.
func NewService(gen generator.Generator, repo repository.PostRepository, topics []Topic, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Generator: gen,
		Repo:      repo,
		Topics:    topics,
		Logger:    logger,
		Retry:     retry.GenerationConfig(),
		now:       time.Now,
	}
}

// GenerateDraft runs one generation cycle: it walks the topic rotation
// looking for a topic whose slug is not yet in the store, generates a draft
// for it, and persists the post. Topic selection happens before the
// generation call so a crowded rotation never burns provider quota.
func (s *Service) GenerateDraft(ctx context.Context) (*entity.Post, error) {
	topic, slug, err := s.nextTopic(ctx)
	if err != nil {
		return nil, err
	}

	s.Logger.InfoContext(ctx, "generating blog draft",
		slog.String("topic", topic.Title),
		slog.String("slug", slug))

	var raw json.RawMessage
	err = retry.WithBackoff(ctx, s.Retry, func() error {
		var genErr error
		raw, genErr = s.Generator.Generate(ctx, generator.Request{
			Flow:         "blog-draft",
			Prompt:       s.renderPrompt(topic),
			OutputSchema: draftSchema,
		})
		return genErr
	})
	if err != nil {
		return nil, fmt.Errorf("generate blog draft %q: %w", topic.Title, err)
	}

	var doc draftDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode blog draft: %w", err)
	}

	post := &entity.Post{
		Origin:    entity.OriginStore,
		Title:     doc.Title,
		Slug:      slug,
		Excerpt:   doc.Excerpt,
		Body:      doc.Content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("store blog draft %q: %w", slug, err)
	}

	s.Logger.InfoContext(ctx, "blog draft published",
		slog.String("slug", post.Slug),
		slog.String("post_id", post.ID))
	return post, nil
}

func (s *Service) renderPrompt(topic Topic) string {
	audience := topic.Audience
	if audience == "" {
		audience = "recreational lifters"
	}
	angle := topic.Angle
	if angle == "" {
		angle = "practical coaching advice"
	}
	// All placeholders are bound from topic fields, so Render cannot fail.
	prompt, _ := draftPrompt.Render(map[string]string{
		"title":    topic.Title,
		"audience": audience,
		"angle":    angle,
	})
	return prompt
}

// nextTopic returns the first topic in rotation without a published post.
// The generated slug doubles as the dedupe key.
func (s *Service) nextTopic(ctx context.Context) (Topic, string, error) {
	for _, topic := range s.Topics {
		slug := entity.Slugify(topic.Title)
		exists, err := s.Repo.ExistsBySlug(ctx, slug)
		if err != nil {
			return Topic{}, "", fmt.Errorf("check slug %q: %w", slug, err)
		}
		if !exists {
			return topic, slug, nil
		}
	}
	return Topic{}, "", ErrNoFreshTopic
}
