package genai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a transport or service failure reported by the Gemini endpoint.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gemini status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gemini status %d", e.StatusCode)
}

// NoImageError reports that the model answered without an inline image. The
// captured text distinguishes a declined/blocked generation from a failed
// call; single-style generation keys its fallback attempt off this type.
type NoImageError struct {
	Text string
}

func (e *NoImageError) Error() string {
	return "no image returned: " + e.Text
}

// IsInternal reports whether err carries an internal/server-side signature
// and is therefore worth retrying. Anything else (quota, invalid argument,
// safety block) fails the same way on every attempt.
func IsInternal(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return true
		}
		if strings.Contains(apiErr.Status, "INTERNAL") {
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "INTERNAL") || strings.Contains(msg, "500")
}
