package handlers

import (
	"net/http"
	"time"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/services"
)

const serviceVersion = "2.0.0"

type HealthHandler struct {
	setup         services.SetupService
	storageDriver string
	now           func() time.Time
}

func NewHealthHandler(setup services.SetupService, storageDriver string) *HealthHandler {
	return &HealthHandler{setup: setup, storageDriver: storageDriver, now: time.Now}
}

// Health answers 200 whenever the process is up. The database status is
// informational.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
		Message:   "ONE BLUE DOT Admin Server is running",
		Database:  h.setup.Check(r.Context()),
	})
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.ServiceResponse{
		Status:    "ok",
		Service:   "ONE BLUE DOT Admin API",
		Version:   serviceVersion,
		Database:  "PostgreSQL",
		Storage:   h.storageDriver,
		Timestamp: h.now().UTC(),
		Setup:     h.setup.Check(r.Context()),
	})
}

func (h *HealthHandler) SetupStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.setup.Check(r.Context()))
}
