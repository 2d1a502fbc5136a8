// ABOUTME: HTTP handlers for liveness, health and environment checks
// ABOUTME: Reports service status without exposing any secret values

package handlers

import (
	"net/http"

	"github.com/markalston/sentiment-analyzer/models"
)

// Root is the liveness endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Sentiment Analysis API"})
}

// Health returns service status and whether the inference provider is configured.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{Status: "ok"}
	if h.cfg != nil {
		resp.ProviderConfigured = h.cfg.ProviderConfigured()
		resp.Model = h.cfg.HFModel
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// TestEnv reports which secrets are present.
func (h *Handler) TestEnv(w http.ResponseWriter, r *http.Request) {
	var resp models.EnvCheckResponse
	if h.cfg != nil {
		resp.HFKeyConfigured = h.cfg.HFAPIKey != ""
		resp.JWTSecretConfigured = h.cfg.JWTSecret != ""
	}

	h.writeJSON(w, http.StatusOK, resp)
}
