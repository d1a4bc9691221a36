package respond

import (
	"regexp"
)

var (
	// Provider API key patterns. The Anthropic pattern must be applied
	// first; it is a superset of the generic sk- prefix.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Commerce-blog access tokens as sent in request headers or URLs.
	shopTokenPattern = regexp.MustCompile(`shpat_[a-zA-Z0-9]+`)

	// Passwords embedded in connection strings.
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// SanitizeError masks credentials that tend to leak through wrapped errors
// from HTTP clients and database drivers.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = shopTokenPattern.ReplaceAllString(msg, "shpat_****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
