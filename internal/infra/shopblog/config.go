package shopblog

import (
	"fmt"
	"os"
	"time"
)

// Config holds connection settings for the hosted commerce-blog API.
type Config struct {
	// BaseURL is the root of the shop's API, e.g. "https://shop.example.com".
	BaseURL string

	// AccessToken authenticates requests against the storefront API.
	AccessToken string

	// BlogHandle selects which of the shop's blogs to read.
	BlogHandle string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// LoadConfig loads shop configuration from environment variables.
// SHOP_BASE_URL is required; the client is the primary content provider and
// must not start silently misconfigured (fail-closed).
//
// Environment variables:
//   - SHOP_BASE_URL: API root (required)
//   - SHOP_ACCESS_TOKEN: storefront access token (required)
//   - SHOP_BLOG_HANDLE: blog handle (default: "news")
func LoadConfig() (Config, error) {
	baseURL := os.Getenv("SHOP_BASE_URL")
	if baseURL == "" {
		return Config{}, fmt.Errorf("SHOP_BASE_URL not set")
	}
	token := os.Getenv("SHOP_ACCESS_TOKEN")
	if token == "" {
		return Config{}, fmt.Errorf("SHOP_ACCESS_TOKEN not set")
	}

	handle := os.Getenv("SHOP_BLOG_HANDLE")
	if handle == "" {
		handle = "news"
	}

	return Config{
		BaseURL:     baseURL,
		AccessToken: token,
		BlogHandle:  handle,
		Timeout:     10 * time.Second,
	}, nil
}
