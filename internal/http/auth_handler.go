package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/clients"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

// AuthHandler drives the sign-in flows against the commerce API. The
// session token lands in the local token slot so the client layer can
// attach it to every later request.
type AuthHandler struct {
	auth   *clients.AuthClient
	tokens *store.TokenStore
}

func NewAuthHandler(auth *clients.AuthClient, tokens *store.TokenStore) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	sess, err := h.auth.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	h.storeSession(w, sess)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	sess, err := h.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	h.storeSession(w, sess)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Best effort upstream; the local session goes either way.
	_ = h.auth.Logout(r.Context())

	if err := h.tokens.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Me(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "new password is required")
		return
	}

	if err := h.auth.ChangePassword(r.Context(), body.CurrentPassword, body.NewPassword); err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

func (h *AuthHandler) storeSession(w http.ResponseWriter, sess clients.Session) {
	if err := h.tokens.Set(sess.Token); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store session")
		return
	}
	writeJSON(w, http.StatusOK, sess.User)
}
