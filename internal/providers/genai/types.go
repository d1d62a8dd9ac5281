package genai

import "strings"

// Part is one element of an ordered generateContent payload: either plain
// instruction text or inline binary data (base64) tagged with a MIME type.
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inlineData,omitempty"`
}

// Blob carries base64-encoded bytes plus their MIME type.
type Blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Request describes one generateContent invocation. Parts are ordered and the
// request is built fresh per call; callers never mutate one after submission.
type Request struct {
	Parts []Part
	// WebSearch enables the search-grounding tool so the model can pull in
	// current product and market context.
	WebSearch bool
	// ImageOutput asks the model to respond with image modalities. Without it
	// the model answers in text only.
	ImageOutput bool
}

// Response is the decoded generateContent result. The model is free to answer
// with image parts, text parts, or a mix; callers inspect via the extractor
// helpers rather than re-walking the raw shape.
type Response struct {
	Candidates []Candidate
}

// Candidate is one model output alternative.
type Candidate struct {
	Parts        []Part
	FinishReason string
}

// Text concatenates every text part across all candidates. Returns "" when
// the model produced no text at all.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range r.Candidates {
		for _, part := range cand.Parts {
			if part.Text != "" {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}

type wireContent struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type wireTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type wireGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type wireGenerateContentRequest struct {
	Contents         []wireContent         `json:"contents"`
	Tools            []wireTool            `json:"tools,omitempty"`
	GenerationConfig *wireGenerationConfig `json:"generationConfig,omitempty"`
}

type wireCandidate struct {
	Content      wireContent `json:"content"`
	FinishReason string      `json:"finishReason,omitempty"`
}

type wireGenerateContentResponse struct {
	Candidates []wireCandidate `json:"candidates"`
}

type wireErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Status  string `json:"status,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}
