package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/clients"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}

// writeUpstreamError maps commerce-api failures onto the storefront
// response. A 401 means the stored session is gone; the client layer has
// already wiped the token, the UI routes back to login.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var apiErr *clients.APIError
	switch {
	case errors.Is(err, clients.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "session expired, please sign in again")
	case errors.As(err, &apiErr):
		writeError(w, apiErr.Status, apiErr.Message)
	default:
		writeError(w, http.StatusBadGateway, "commerce api request failed")
	}
}
