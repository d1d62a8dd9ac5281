package adgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImageFormat is returned for inputs that are not
	// data:image/...;base64 URLs. Checked before any remote call.
	ErrInvalidImageFormat = errors.New("invalid image format")
	// ErrResearchFailed marks a failed research call; it aborts the whole
	// campaign before any image generation starts.
	ErrResearchFailed = errors.New("campaign research failed")
	// ErrInsufficientConcepts is returned when the research reply parsed to
	// fewer than CampaignSize usable prompts. The research call is not
	// retried and no generation calls are issued.
	ErrInsufficientConcepts = errors.New("insufficient creative concepts")
)

// GenerationError is the terminal failure of one generation request. For
// single-style generation it may carry both the primary failure and the
// failure of the one fallback attempt.
type GenerationError struct {
	Cause         error
	FallbackCause error
}

func (e *GenerationError) Error() string {
	if e.FallbackCause != nil {
		return fmt.Sprintf("generation failed: %v (fallback: %v)", e.Cause, e.FallbackCause)
	}
	return fmt.Sprintf("generation failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
