package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Handler exposes the auth HTTP endpoints.
type Handler struct {
	store  *Store
	issuer *TokenIssuer
}

// NewHandler creates a Handler backed by the given Store and TokenIssuer.
func NewHandler(store *Store, issuer *TokenIssuer) *Handler {
	return &Handler{store: store, issuer: issuer}
}

// ---------------------------------------------------------------------------
// Request / Response types
// ---------------------------------------------------------------------------

// CredentialsRequest is the body of POST /auth/register and /auth/login.
type CredentialsRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"s3cret"`
}

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

type errorResponse struct {
	Error string `json:"error" example:"username already taken"`
}

// ---------------------------------------------------------------------------
// POST /auth/register
// ---------------------------------------------------------------------------

// Register godoc
//
//	@Summary		Register a user
//	@Description	Creates a new user. The password is stored as a one-way salted hash.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CredentialsRequest	true	"credentials"
//	@Success		201		{object}	models.User
//	@Failure		400		{object}	errorResponse
//	@Failure		409		{object}	errorResponse
//	@Router			/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		writeErr(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			writeErr(w, http.StatusConflict, "username already taken")
			return
		}
		slog.Error("create user", "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	slog.Info("user registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, user)
}

// ---------------------------------------------------------------------------
// POST /auth/login
// ---------------------------------------------------------------------------

// Login godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns a bearer token with a fixed expiry.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CredentialsRequest	true	"credentials"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		401		{object}	errorResponse
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, err := h.store.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeErr(w, http.StatusUnauthorized, "incorrect username or password")
			return
		}
		slog.Error("authenticate", "error", err)
		writeErr(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := h.issuer.Issue(user.Username)
	if err != nil {
		slog.Error("issue token", "username", user.Username, "error", err)
		writeErr(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
