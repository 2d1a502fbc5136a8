// ABOUTME: Login handler issuing bearer tokens
// ABOUTME: Exchanges a username/password pair for a signed access token

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/markalston/sentiment-analyzer/models"
	"github.com/markalston/sentiment-analyzer/services"
)

// Login validates credentials and returns a bearer token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.tokens.Issue(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.Warn("Login failed", "username", services.SanitizeForLog(req.Username))
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.writeError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		slog.Error("Failed to issue token", "error", err)
		h.writeError(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	slog.Info("Login succeeded", "username", services.SanitizeForLog(req.Username))
	h.writeJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    req.Username,
	})
}
