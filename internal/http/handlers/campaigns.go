package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/adgen"
	"server/internal/session"
)

type campaignCreateRequest struct {
	ProductImage string                `json:"product_image"`
	LogoImage    string                `json:"logo_image,omitempty"`
	Options      adgen.CampaignOptions `json:"options"`
}

type campaignItemView struct {
	Index   int    `json:"index"`
	Status  string `json:"status"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message,omitempty"`
}

type campaignView struct {
	ID        string             `json:"id"`
	Status    string             `json:"status"`
	Items     []campaignItemView `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CampaignsCreate validates the upload, registers a campaign with all slots
// pending, and starts generation in the background. The browser polls
// CampaignsGet for per-item progress.
func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := adgen.ValidateImageDataURL(req.ProductImage); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_image_format", "product_image: "+err.Error())
		return
	}
	if req.LogoImage != "" {
		if err := adgen.ValidateImageDataURL(req.LogoImage); err != nil {
			a.error(w, http.StatusBadRequest, "invalid_image_format", "logo_image: "+err.Error())
			return
		}
	}

	id := a.Store.Create(req.Options)

	// The campaign outlives the HTTP request; once started it always runs to
	// completion, so it gets a fresh context.
	go a.runCampaign(context.Background(), id, req)

	snap, err := a.Store.Get(id)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaign")
		return
	}
	a.json(w, http.StatusAccepted, viewFromSnapshot(snap))
}

func (a *App) runCampaign(ctx context.Context, id string, req campaignCreateRequest) {
	err := a.Service.GenerateCampaign(ctx, req.ProductImage, req.LogoImage, req.Options, func(index int, res adgen.ItemResult) {
		a.Store.SetItem(id, index, res)
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("campaign_id", id).Msg("handlers: campaign aborted")
		a.Store.Fail(id, err.Error())
		return
	}
	a.Store.Complete(id)
	a.Logger.Info().Str("campaign_id", id).Msg("handlers: campaign completed")
}

// CampaignsGet returns the current per-item state of one campaign.
func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "campaign_id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "campaign_id required")
		return
	}
	snap, err := a.Store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "campaign not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaign")
		return
	}
	a.json(w, http.StatusOK, viewFromSnapshot(snap))
}

func viewFromSnapshot(snap session.Snapshot) campaignView {
	items := make([]campaignItemView, len(snap.Items))
	for i, item := range snap.Items {
		items[i] = campaignItemView{
			Index:   i,
			Status:  string(item.Status),
			URL:     item.URL,
			Message: item.Message,
		}
	}
	return campaignView{
		ID:        snap.ID,
		Status:    string(snap.Status),
		Items:     items,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
}
