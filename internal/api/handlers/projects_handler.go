package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/services"
)

type ProjectsHandler struct {
	svc services.ProjectService
}

func NewProjectsHandler(svc services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ProjectsResponse{Projects: items})
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ProjectResponse{Project: *p})
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.CreateProjectResponse{Success: true, ProjectID: p.ID})
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ProjectPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.UpdateProjectResponse{Success: true, Project: *p})
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.SuccessResponse{Success: true})
}
