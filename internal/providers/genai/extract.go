package genai

import (
	"fmt"
	"strings"
)

const noImagePlaceholder = "model returned an empty response"

// ExtractImageDataURL walks the response for the first inline image part and
// returns it as a data URL. A response without an image is not a transport
// failure; it yields a *NoImageError carrying whatever text the model wrote
// so callers can decide whether to fall back.
func ExtractImageDataURL(resp *Response) (string, error) {
	if resp != nil {
		for _, cand := range resp.Candidates {
			for _, part := range cand.Parts {
				if part.InlineData == nil || part.InlineData.Data == "" {
					continue
				}
				mime := part.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data), nil
			}
		}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		text = noImagePlaceholder
	}
	return "", &NoImageError{Text: text}
}
