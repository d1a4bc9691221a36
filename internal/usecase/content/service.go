package content

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"vmfit/internal/domain/entity"
	"vmfit/internal/observability/metrics"
	"vmfit/internal/repository"
)

// DefaultListLimit is used when a caller does not specify how many posts
// to return.
const DefaultListLimit = 20

// MaxListLimit caps a single list query. Each provider is asked for at most
// this many posts, so the merged feed never over-fetches.
const MaxListLimit = 100

// Service merges posts from multiple providers into one feed.
//
// Providers are queried in the order given; for slug lookups the first
// provider that returns a post wins, which makes the ordering the tiebreak
// for slug collisions. The commerce blog is listed first so that its posts
// are authoritative.
type Service struct {
	Providers []repository.PostProvider
	Logger    *slog.Logger
}

// NewService creates a content service over the given providers.
func NewService(logger *slog.Logger, providers ...repository.PostProvider) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Providers: providers, Logger: logger}
}

// ListPosts fans out to every provider concurrently and returns the merged
// feed, newest first, truncated to limit. A failing provider contributes
// nothing; its error is logged and counted, never propagated. When every
// provider fails the feed is empty, not an error.
func (s *Service) ListPosts(ctx context.Context, limit int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	var (
		mu     sync.Mutex
		merged []*entity.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, provider := range s.Providers {
		g.Go(func() error {
			start := time.Now()
			posts, err := provider.ListPosts(gctx, limit)
			origin := provider.Origin()
			metrics.RecordProviderFetch(string(origin), err == nil, time.Since(start))
			if err != nil {
				s.Logger.WarnContext(ctx, "provider fetch failed, degrading feed",
					slog.String("origin", string(origin)),
					slog.String("error", err.Error()))
				return nil
			}
			mu.Lock()
			merged = append(merged, posts...)
			mu.Unlock()
			return nil
		})
	}
	// Workers swallow their own errors, so Wait only observes ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	// Bodies belong to single-post views only.
	for _, post := range merged {
		post.Body = ""
	}

	metrics.RecordPostsReturned(len(merged))
	return merged, nil
}

// GetPostBySlug returns the first provider's post matching the slug, body
// populated. Providers are queried in order and the search short-circuits
// on a hit, so a later provider is never asked once an earlier one matched.
// A provider error is treated like a miss: the search falls through to the
// next provider, and ErrPostNotFound is returned only after every provider
// has been exhausted.
func (s *Service) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostNotFound, err)
	}

	for _, provider := range s.Providers {
		post, err := provider.GetPostBySlug(ctx, slug)
		if err != nil {
			s.Logger.WarnContext(ctx, "slug lookup failed, trying next provider",
				slog.String("origin", string(provider.Origin())),
				slog.String("slug", slug),
				slog.String("error", err.Error()))
			continue
		}
		if post != nil {
			return post, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPostNotFound, slug)
}
