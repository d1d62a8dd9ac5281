package handlers

import (
	"net/http"

	"server/internal/catalog"
)

type styleItem struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Styles lists the catalog so the UI can render the style picker.
func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	styles := catalog.Styles()
	items := make([]styleItem, 0, len(styles))
	for _, s := range styles {
		items = append(items, styleItem{Key: s.Key, Name: s.DisplayName})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
