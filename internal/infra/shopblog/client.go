// Package shopblog implements the commerce-blog content provider.
// It reads articles from the shop's hosted blog API and normalizes them into
// the unified Post shape, with retry and circuit breaker protection around
// every HTTP call.
package shopblog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"vmfit/internal/domain/entity"
	"vmfit/internal/repository"
	"vmfit/internal/resilience/circuitbreaker"
	"vmfit/internal/resilience/retry"
)

// maxResponseBytes caps provider response bodies. Articles are small; anything
// larger indicates a misbehaving endpoint.
const maxResponseBytes = 4 << 20

var _ repository.PostProvider = (*Client)(nil)

// Client fetches blog articles from the hosted commerce API.
type Client struct {
	httpClient     *http.Client
	config         Config
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewClient creates a shop blog client with retry and circuit breaker
// protection configured for provider fetches.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		config:         cfg,
		circuitBreaker: circuitbreaker.New(circuitbreaker.ShopBlogConfig()),
		retryConfig:    retry.ProviderFetchConfig(),
	}
}

// Origin identifies this provider in logs and metrics.
func (c *Client) Origin() entity.PostOrigin {
	return entity.OriginShopBlog
}

// listPayload is the native shape of the blog list endpoint.
type listPayload struct {
	Articles []articleRecord `json:"articles"`
}

// getPayload is the native shape of the single-article endpoint.
type getPayload struct {
	Article *articleRecord `json:"article"`
}

// ListPosts fetches up to limit articles, most recent first.
// Bodies are omitted from list results.
func (c *Client) ListPosts(ctx context.Context, limit int) ([]*entity.Post, error) {
	endpoint := fmt.Sprintf("%s/api/blogs/%s/articles?limit=%d",
		c.config.BaseURL, url.PathEscape(c.config.BlogHandle), limit)

	var payload listPayload
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("list shop articles: %w", err)
	}

	posts := make([]*entity.Post, 0, len(payload.Articles))
	for i := range payload.Articles {
		post, err := normalizeArticle(&payload.Articles[i], false)
		if err != nil {
			// Skip records the shop returns in a broken state; one malformed
			// article must not empty the whole feed.
			slog.Warn("skipping malformed shop article",
				slog.String("handle", payload.Articles[i].Handle),
				slog.Any("error", err))
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// GetPostBySlug fetches a single article by its handle, body populated.
// Returns (nil, nil) when the shop has no article with that handle.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	endpoint := fmt.Sprintf("%s/api/blogs/%s/articles/%s",
		c.config.BaseURL, url.PathEscape(c.config.BlogHandle), url.PathEscape(slug))

	var payload getPayload
	err := c.get(ctx, endpoint, &payload)
	if err != nil {
		var httpErr *retry.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop article %q: %w", slug, err)
	}
	if payload.Article == nil {
		return nil, nil
	}

	post, err := normalizeArticle(payload.Article, true)
	if err != nil {
		return nil, fmt.Errorf("normalize shop article %q: %w", slug, err)
	}
	return post, nil
}

// Ping verifies that the blog API is reachable and the access token is
// accepted. Used by the health check; deliberately skips retry so an
// unhealthy upstream is reported promptly.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/blogs/%s/articles?limit=1",
		c.config.BaseURL, url.PathEscape(c.config.BlogHandle))

	var payload listPayload
	if err := c.doGet(ctx, endpoint, &payload); err != nil {
		return fmt.Errorf("shop blog ping: %w", err)
	}
	return nil
}

// get performs one authenticated GET with retry and circuit breaker wrapping,
// then decodes the payload into v.
func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	return retry.WithBackoff(ctx, c.retryConfig, func() error {
		_, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return nil, c.doGet(ctx, endpoint, v)
		})
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("shop blog circuit breaker open, request rejected",
				slog.String("endpoint", endpoint))
			return fmt.Errorf("shop blog unavailable: circuit breaker open")
		}
		return err
	})
}

// doGet performs the actual HTTP call without retry or circuit breaker.
func (c *Client) doGet(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shop-Access-Token", c.config.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shop api request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &retry.HTTPError{StatusCode: resp.StatusCode, Message: "shop api"}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read shop api response: %w", err)
	}

	if err := decodePayload(body, v); err != nil {
		return fmt.Errorf("decode shop api response: %w", err)
	}
	return nil
}
