package health

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Handler exposes the health HTTP endpoints.
type Handler struct {
	deriver *Deriver
}

// NewHandler creates a Handler backed by the given Deriver.
func NewHandler(deriver *Deriver) *Handler {
	return &Handler{deriver: deriver}
}

// AllServersResponse is the response for GET /health/all.
type AllServersResponse struct {
	Servers []models.ServerHealth `json:"servers"`
}

type errorResponse struct {
	Error string `json:"error" example:"server not found"`
}

// GetServer godoc
//
//	@Summary		Get one server's health
//	@Description	Classifies the server as online when its most recent reading
//	@Description	is at most 10 seconds old. A server with no readings is 404.
//	@Tags			health
//	@Produce		json
//	@Param			server_ulid	path		string	true	"server ULID"
//	@Success		200			{object}	models.ServerHealth
//	@Failure		404			{object}	errorResponse
//	@Security		BearerAuth
//	@Router			/health/{server_ulid} [get]
func (h *Handler) GetServer(w http.ResponseWriter, r *http.Request) {
	serverULID := chi.URLParam(r, "server_ulid")
	if serverULID == "" {
		writeErr(w, http.StatusBadRequest, "server_ulid is required")
		return
	}

	view, err := h.deriver.ServerHealth(r.Context(), serverULID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "server not found")
			return
		}
		slog.Error("derive server health", "server_ulid", serverULID, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to derive server health")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetAll godoc
//
//	@Summary		Get all servers' health
//	@Description	Lists health for every server observed in telemetry, whether
//	@Description	or not it was registered.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	AllServersResponse
//	@Security		BearerAuth
//	@Router			/health/all [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	views, err := h.deriver.AllServersHealth(r.Context())
	if err != nil {
		slog.Error("derive all servers health", "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to derive servers health")
		return
	}
	if views == nil {
		views = []models.ServerHealth{}
	}

	writeJSON(w, http.StatusOK, AllServersResponse{Servers: views})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
