package adgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"server/internal/catalog"
	"server/internal/infra"
	"server/internal/providers/genai"
)

// Service orchestrates ad-creative generation against the Gemini API. Image
// calls go through the retry layer; the research call is issued once,
// unretried, against the text model.
type Service struct {
	caller  genai.ContentCaller
	retrier *genai.Retrier
	logger  infra.Logger

	imageModel string
	textModel  string
}

// NewService wires the orchestrator. The caller is typically *genai.Client;
// tests substitute a stub.
func NewService(caller genai.ContentCaller, logger *infra.Logger, imageModel, textModel string) *Service {
	l := zerolog.New(io.Discard)
	if logger != nil {
		l = *logger
	}
	return &Service{
		caller:     caller,
		retrier:    genai.NewRetrier(caller, logger),
		logger:     l,
		imageModel: imageModel,
		textModel:  textModel,
	}
}

// GenerateStyled renders one ad for a named catalog style and returns the
// image as a data URL. When the model answers with text instead of an image,
// exactly one fallback attempt with the generic style instruction is made;
// any other failure propagates without a fallback.
func (s *Service) GenerateStyled(ctx context.Context, imageDataURL, style string) (string, error) {
	instruction, err := catalog.Instruction(style)
	if err != nil {
		return "", err
	}
	product, err := parseImageDataURL(imageDataURL)
	if err != nil {
		return "", err
	}

	url, err := s.generateImage(ctx, instruction, product, nil)
	if err == nil {
		return url, nil
	}

	var noImage *genai.NoImageError
	if !errors.As(err, &noImage) {
		return "", &GenerationError{Cause: err}
	}

	s.logger.Warn().
		Str("style", style).
		Str("model_text", noImage.Text).
		Msg("adgen: styled prompt returned no image, attempting fallback")

	url, fallbackErr := s.generateImage(ctx, catalog.FallbackInstruction(style), product, nil)
	if fallbackErr != nil {
		return "", &GenerationError{Cause: err, FallbackCause: fallbackErr}
	}
	return url, nil
}

// GenerateCampaign researches CampaignSize creative prompts, then generates
// all concepts concurrently, delivering each item's outcome through report as
// it completes. It returns only after every item has reported; per-item
// failures never fail the campaign, only a research-phase failure does.
func (s *Service) GenerateCampaign(ctx context.Context, productDataURL, logoDataURL string, opts CampaignOptions, report ProgressFunc) error {
	product, err := parseImageDataURL(productDataURL)
	if err != nil {
		return err
	}
	var logo *genai.Blob
	if logoDataURL != "" {
		if logo, err = parseImageDataURL(logoDataURL); err != nil {
			return err
		}
	}

	prompts, err := s.researchPrompts(ctx, opts)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for i, prompt := range prompts {
		i, prompt := i, prompt
		g.Go(func() error {
			url, genErr := s.generateImage(ctx, buildItemInstruction(prompt, opts, logo != nil), product, logo)
			if genErr != nil {
				s.logger.Warn().Err(genErr).Int("item", i).Msg("adgen: campaign item failed")
				report(i, ItemResult{Status: ItemStatusError, Message: genErr.Error()})
				return nil
			}
			s.logger.Debug().Int("item", i).Msg("adgen: campaign item done")
			report(i, ItemResult{Status: ItemStatusDone, URL: url})
			return nil
		})
	}
	return g.Wait()
}

// generateImage is the shared invocation core: build the part list, call the
// image model through the retry layer, extract the inline image as a data
// URL. Fallback policy is the caller's concern.
func (s *Service) generateImage(ctx context.Context, instruction string, product, logo *genai.Blob) (string, error) {
	parts := []genai.Part{
		{InlineData: product},
		{Text: instruction},
	}
	if logo != nil {
		parts = append(parts, genai.Part{InlineData: logo})
	}

	resp, err := s.retrier.Generate(ctx, s.imageModel, genai.Request{Parts: parts, ImageOutput: true})
	if err != nil {
		return "", err
	}
	return genai.ExtractImageDataURL(resp)
}

// buildItemInstruction embeds the campaign options into one researched prompt.
func buildItemInstruction(prompt string, opts CampaignOptions, hasLogo bool) string {
	var b strings.Builder
	b.WriteString("Create a professional advertisement image using the attached product photo. Scene: ")
	b.WriteString(strings.TrimSpace(prompt))
	b.WriteString("\n")

	if aspect := strings.TrimSpace(opts.AspectRatio); aspect != "" {
		fmt.Fprintf(&b, "Aspect ratio: %s.\n", aspect)
	}
	if colors := strings.TrimSpace(opts.BrandColors); colors != "" {
		fmt.Fprintf(&b, "Use the brand colors: %s.\n", colors)
	}
	if tagline := strings.TrimSpace(opts.Tagline); tagline != "" {
		fmt.Fprintf(&b, "Render the tagline %q cleanly and legibly.\n", tagline)
	}
	if hasLogo {
		b.WriteString("Place the attached company logo naturally in the composition.\n")
	} else {
		b.WriteString("Do not invent or add any logo.\n")
	}
	b.WriteString("Keep the product itself unaltered and sharply in focus.")
	return b.String()
}
