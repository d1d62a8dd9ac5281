package adgen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"server/internal/providers/genai"
)

var promptMarker = regexp.MustCompile(`(?i)PROMPT\s*\d+\s*:`)

// researchPrompts issues the single research call and parses its reply into
// exactly CampaignSize creative prompts. The call is not retried; any failure
// is campaign-fatal.
func (s *Service) researchPrompts(ctx context.Context, opts CampaignOptions) ([]string, error) {
	req := genai.Request{
		Parts:     []genai.Part{{Text: buildResearchInstruction(opts)}},
		WebSearch: true,
	}

	resp, err := s.caller.GenerateContent(ctx, s.textModel, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResearchFailed, err)
	}

	prompts := splitPrompts(resp.Text())
	if len(prompts) < CampaignSize {
		return nil, fmt.Errorf("%w: got %d of %d", ErrInsufficientConcepts, len(prompts), CampaignSize)
	}
	return prompts[:CampaignSize], nil
}

func buildResearchInstruction(opts CampaignOptions) string {
	var b strings.Builder
	b.WriteString("You are an award-winning advertising creative director. ")
	b.WriteString("Research current visual advertising trends for the product below, then write exactly ")
	fmt.Fprintf(&b, "%d distinct ad concepts.\n\n", CampaignSize)

	writeField(&b, "Product", opts.ProductTitle)
	writeField(&b, "Product type", opts.ProductType)
	writeField(&b, "Flavor", opts.Flavor)
	writeField(&b, "Company", opts.CompanyName)
	writeField(&b, "Tagline", opts.Tagline)
	writeField(&b, "Brand colors", opts.BrandColors)

	b.WriteString("\nEach concept must be one self-contained scene description written for an image generation model: ")
	b.WriteString("concrete setting, lighting, mood, and composition. No numbered lists, no commentary between concepts. ")
	b.WriteString("Prefix every concept with the literal marker \"PROMPT <n>:\" where <n> is its number, e.g. \"PROMPT 1:\".")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}

// splitPrompts cuts the reply on the PROMPT markers, trims each segment, and
// drops empty ones. Order is preserved; it corresponds to presentation order.
func splitPrompts(text string) []string {
	segments := promptMarker.Split(text, -1)
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
