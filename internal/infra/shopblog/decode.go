package shopblog

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// DecodeError is returned when a provider payload matches neither of the
// supported encodings. It is a typed failure rather than a silent guess.
type DecodeError struct {
	Base64Err error
	JSONErr   error
}

// Error returns a summary of both failed decode attempts.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("payload matched no supported encoding (base64: %v; json: %v)", e.Base64Err, e.JSONErr)
}

// decodePayload parses a provider response body into v.
// Some deployments wrap the JSON document in base64; the parse is an explicit
// two-step: attempt base64-wrapped JSON first, then raw JSON, and surface a
// DecodeError when both fail.
func decodePayload(data []byte, v any) error {
	decoded, b64Err := base64.StdEncoding.DecodeString(string(data))
	if b64Err == nil {
		if jsonErr := json.Unmarshal(decoded, v); jsonErr == nil {
			return nil
		}
	}

	jsonErr := json.Unmarshal(data, v)
	if jsonErr == nil {
		return nil
	}

	if b64Err == nil {
		b64Err = fmt.Errorf("decoded bytes are not valid JSON")
	}
	return &DecodeError{Base64Err: b64Err, JSONErr: jsonErr}
}
