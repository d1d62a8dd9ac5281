package genai

import (
	"errors"
	"testing"
)

func TestExtractImageDataURLReturnsFirstInlineImage(t *testing.T) {
	resp := &Response{Candidates: []Candidate{{
		Parts: []Part{
			{Text: "here is your ad"},
			{InlineData: &Blob{MimeType: "image/png", Data: "aGVsbG8="}},
			{InlineData: &Blob{MimeType: "image/jpeg", Data: "c2Vjb25k"}},
		},
	}}}

	url, err := ExtractImageDataURL(resp)
	if err != nil {
		t.Fatalf("ExtractImageDataURL returned error: %v", err)
	}
	if url != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("url = %q", url)
	}
}

func TestExtractImageDataURLDefaultsMimeType(t *testing.T) {
	resp := &Response{Candidates: []Candidate{{
		Parts: []Part{{InlineData: &Blob{Data: "aGVsbG8="}}},
	}}}

	url, err := ExtractImageDataURL(resp)
	if err != nil {
		t.Fatalf("ExtractImageDataURL returned error: %v", err)
	}
	if url != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("url = %q", url)
	}
}

func TestExtractImageDataURLTextOnly(t *testing.T) {
	resp := &Response{Candidates: []Candidate{{
		Parts: []Part{{Text: "I cannot generate that image."}},
	}}}

	_, err := ExtractImageDataURL(resp)
	var noImage *NoImageError
	if !errors.As(err, &noImage) {
		t.Fatalf("err = %v, want *NoImageError", err)
	}
	if noImage.Text != "I cannot generate that image." {
		t.Fatalf("Text = %q", noImage.Text)
	}
}

func TestExtractImageDataURLEmptyResponseUsesPlaceholder(t *testing.T) {
	_, err := ExtractImageDataURL(&Response{})
	var noImage *NoImageError
	if !errors.As(err, &noImage) {
		t.Fatalf("err = %v, want *NoImageError", err)
	}
	if noImage.Text != noImagePlaceholder {
		t.Fatalf("Text = %q, want placeholder", noImage.Text)
	}
}
