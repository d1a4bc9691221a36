package pathutil

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidSlug is returned when the slug segment of a URL path is malformed.
var ErrInvalidSlug = errors.New("invalid slug")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ExtractSlug extracts the slug segment from a URL path.
// The prefix (e.g. "/posts/") is removed and the remainder must be a single
// lowercase hyphenated segment.
func ExtractSlug(path, prefix string) (string, error) {
	slug := strings.TrimSuffix(strings.TrimPrefix(path, prefix), "/")
	if slug == "" || strings.Contains(slug, "/") || !slugPattern.MatchString(slug) {
		return "", ErrInvalidSlug
	}
	return slug, nil
}
