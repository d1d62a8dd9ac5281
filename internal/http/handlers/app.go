package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"server/internal/adgen"
	"server/internal/infra"
	"server/internal/session"
)

// CampaignService is the slice of the generation orchestrator the HTTP layer
// depends on.
type CampaignService interface {
	GenerateStyled(ctx context.Context, imageDataURL, style string) (string, error)
	GenerateCampaign(ctx context.Context, productDataURL, logoDataURL string, opts adgen.CampaignOptions, report adgen.ProgressFunc) error
}

// App bundles the handler dependencies.
type App struct {
	Logger  infra.Logger
	Service CampaignService
	Store   *session.Store
}

func NewApp(service CampaignService, store *session.Store, logger infra.Logger) *App {
	return &App{Logger: logger, Service: service, Store: store}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
