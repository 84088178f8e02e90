package handlers

import (
	"net/http"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/services"
)

type SettingsHandler struct {
	svc services.SettingsService
}

func NewSettingsHandler(svc services.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) GetHomepage(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.SettingsResponse{Settings: st})
}

func (h *SettingsHandler) UpdateHomepage(w http.ResponseWriter, r *http.Request) {
	var req types.SettingsUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st, err := h.svc.Update(r.Context(), req.FeaturedProjects)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.UpdateSettingsResponse{Success: true, Settings: st})
}
