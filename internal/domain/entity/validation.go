package entity

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

const (
	// maxEmailLength caps email input to prevent abuse of the capture endpoint.
	maxEmailLength = 254

	// maxSlugLength caps slug lookups; provider slugs are far shorter in practice.
	maxSlugLength = 200
)

// slugPattern matches URL-safe slugs: lowercase alphanumerics separated by hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateEmail validates the format of an email address.
// Returns a ValidationError if the address is empty, too long, or malformed.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(email) > maxEmailLength {
		return &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("must not exceed %d characters", maxEmailLength),
		}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	// Reject display-name forms like "Name <a@b.c>"; only the bare address is accepted.
	if addr.Address != email {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	return nil
}

// ValidateSlug validates a post slug used for lookups.
// Returns a ValidationError if the slug is empty, too long, or not URL-safe.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "is required"}
	}
	if len(slug) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("must not exceed %d characters", maxSlugLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{Field: "slug", Message: "must contain only lowercase letters, digits, and hyphens"}
	}
	return nil
}

// Slugify converts a title into a URL-safe slug.
// Non-alphanumeric runs collapse into single hyphens.
func Slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ValidateImageURL validates an optional image URL.
// Empty values are allowed; non-empty values must be well-formed http(s) URLs.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "imageUrl", Message: "must use http or https scheme"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "imageUrl", Message: "must have a valid host"}
	}
	return nil
}
