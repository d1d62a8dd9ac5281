// Package catalog holds the pre-authored creative directions available for
// single-style generation, plus the generic fallback instruction used when a
// primary prompt fails to yield an image.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownStyle is returned for style keys absent from the catalog. Lookup
// happens before any remote call is made.
var ErrUnknownStyle = errors.New("unknown style")

// Style is one named creative direction.
type Style struct {
	Key         string
	DisplayName string
	Instruction string
}

var styleInstructions = map[string]string{
	"luxury": "Transform this product photo into a luxury advertisement. Place the product on a black marble surface with " +
		"dramatic golden hour side lighting, subtle gold accents, and soft reflections. Editorial magazine quality, " +
		"shallow depth of field, premium and exclusive mood. Keep the product itself unaltered and sharply in focus.",
	"minimal": "Transform this product photo into a minimalist advertisement. Pure off-white seamless background, the product " +
		"perfectly centered with generous negative space, one soft shadow, museum-grade diffused lighting. Clean, " +
		"calm, modern gallery aesthetic. Keep the product itself unaltered and sharply in focus.",
	"vibrant": "Transform this product photo into a bold, vibrant advertisement. Saturated complementary color-blocked " +
		"background, dynamic diagonal composition, playful geometric shapes floating around the product, crisp studio " +
		"lighting. Energetic pop-art mood. Keep the product itself unaltered and sharply in focus.",
	"nature": "Transform this product photo into a nature-inspired advertisement. Set the product among organic elements: " +
		"stone, moss, water droplets, and soft morning light filtering through leaves. Earthy palette, fresh and " +
		"sustainable mood. Keep the product itself unaltered and sharply in focus.",
	"retro": "Transform this product photo into a retro advertisement. 1970s color palette with warm oranges and browns, " +
		"grainy film texture, vintage typography-friendly empty space above the product, slightly faded highlights. " +
		"Nostalgic analog mood. Keep the product itself unaltered and sharply in focus.",
	"futuristic": "Transform this product photo into a futuristic advertisement. Dark chrome environment with neon rim lighting, " +
		"holographic gradients, floating light particles and a reflective floor. Sleek sci-fi showroom mood. Keep the " +
		"product itself unaltered and sharply in focus.",
}

// Instruction returns the authored prompt for a style key.
func Instruction(style string) (string, error) {
	key := normalizeKey(style)
	instruction, ok := styleInstructions[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return instruction, nil
}

// FallbackInstruction builds the generic, style-parameterized prompt used
// when the authored prompt produced no image. It is deliberately blander than
// the authored prompts so it survives stricter content filtering.
func FallbackInstruction(style string) string {
	name := strings.ToLower(strings.TrimSpace(style))
	if name == "" {
		name = "professional"
	}
	return fmt.Sprintf("Create a clean professional product advertisement photo in a %s style using this product image. "+
		"Studio lighting, simple background, the product as the hero of the composition.", name)
}

// Styles lists every catalog entry in stable key order for the UI.
func Styles() []Style {
	title := cases.Title(language.Und)
	keys := make([]string, 0, len(styleInstructions))
	for key := range styleInstructions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Style, 0, len(keys))
	for _, key := range keys {
		out = append(out, Style{
			Key:         key,
			DisplayName: title.String(key),
			Instruction: styleInstructions[key],
		})
	}
	return out
}

func normalizeKey(style string) string {
	return strings.ToLower(strings.TrimSpace(style))
}
