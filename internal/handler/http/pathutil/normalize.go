// Package pathutil provides URL path helpers for the HTTP layer: extracting
// slugs from routes and normalizing dynamic paths into low-cardinality
// metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/posts/[a-z0-9-]+$`), template: "/posts/:slug"},
	{pattern: regexp.MustCompile(`^/admin/leads/\d+$`), template: "/admin/leads/:id"},
}

// NormalizePath collapses dynamic URL paths into templates so metric labels
// stay bounded. Static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/posts/five-mobility-drills")  // "/posts/:slug"
//	NormalizePath("/posts")                       // "/posts"
//	NormalizePath("/healthz")                     // "/healthz"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
