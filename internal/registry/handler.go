package registry

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Handler exposes the server registry HTTP endpoints.
type Handler struct {
	store *Store
}

// NewHandler creates a Handler backed by the given Store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRequest is the body of POST /servers.
type RegisterRequest struct {
	ServerName string `json:"server_name" example:"Dolly #1"`
}

type errorResponse struct {
	Error string `json:"error" example:"server_name is required"`
}

// Register godoc
//
//	@Summary		Register a server
//	@Description	Creates a logical server and returns its generated ULID.
//	@Tags			servers
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RegisterRequest	true	"server"
//	@Success		201		{object}	models.Server
//	@Failure		400		{object}	errorResponse
//	@Security		BearerAuth
//	@Router			/servers [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.ServerName == "" {
		writeErr(w, http.StatusBadRequest, "server_name is required")
		return
	}

	server, err := h.store.CreateServer(r.Context(), req.ServerName)
	if err != nil {
		slog.Error("create server", "server_name", req.ServerName, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to register server")
		return
	}

	slog.Info("server registered",
		"server_ulid", server.ServerULID,
		"server_name", server.ServerName,
	)
	writeJSON(w, http.StatusCreated, server)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
