package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/adgen"
	"server/internal/catalog"
)

type styledGenerateRequest struct {
	Image string `json:"image"`
	Style string `json:"style"`
}

type styledGenerateResponse struct {
	URL string `json:"url"`
}

// ImagesGenerate renders one styled ad synchronously and returns the image as
// a data URL.
func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	var req styledGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	url, err := a.Service.GenerateStyled(r.Context(), req.Image, req.Style)
	if err != nil {
		a.Logger.Warn().Err(err).Str("style", req.Style).Msg("handlers: styled generation failed")
		status, code := styledErrorStatus(err)
		a.error(w, status, code, err.Error())
		return
	}
	a.json(w, http.StatusOK, styledGenerateResponse{URL: url})
}

func styledErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, catalog.ErrUnknownStyle):
		return http.StatusBadRequest, "unknown_style"
	case errors.Is(err, adgen.ErrInvalidImageFormat):
		return http.StatusBadRequest, "invalid_image_format"
	default:
		return http.StatusBadGateway, "generation_failed"
	}
}
