// Package content aggregates blog posts from the hosted commerce blog and
// the local document store into one unified feed. Provider failures degrade
// the feed instead of breaking it.
package content

import "errors"

// ErrPostNotFound indicates that no provider has a post with the
// requested slug.
var ErrPostNotFound = errors.New("post not found")
