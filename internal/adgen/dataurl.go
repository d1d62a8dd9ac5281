package adgen

import (
	"fmt"
	"regexp"

	"server/internal/providers/genai"
)

var imageDataURLPattern = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,(.+)$`)

// parseImageDataURL splits a data:image/...;base64 URL into its MIME type and
// base64 payload. Anything else fails with ErrInvalidImageFormat.
func parseImageDataURL(dataURL string) (*genai.Blob, error) {
	m := imageDataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return nil, ErrInvalidImageFormat
	}
	return &genai.Blob{MimeType: m[1], Data: m[2]}, nil
}

// ValidateImageDataURL checks the data-URL shape without keeping the payload.
// Handlers use it to reject malformed uploads before a campaign is created.
func ValidateImageDataURL(dataURL string) error {
	if _, err := parseImageDataURL(dataURL); err != nil {
		return fmt.Errorf("%w: expected data:image/...;base64 payload", err)
	}
	return nil
}
