// ABOUTME: Prediction handler for authenticated sentiment requests
// ABOUTME: Classifies the submitted text and maps classification failures to HTTP errors

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/markalston/sentiment-analyzer/middleware"
	"github.com/markalston/sentiment-analyzer/models"
	"github.com/markalston/sentiment-analyzer/services"
)

// Predict returns the sentiment verdict for the submitted text.
// Requires claims placed in the context by middleware.Auth.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r)
	if claims == nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var req models.PredictRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	verdict, err := h.sentiment.Classify(r.Context(), req.Text)
	if err != nil {
		detail, code := classificationError(err)
		if code >= http.StatusInternalServerError {
			slog.Error("Sentiment classification failed", "user", claims.Username(), "error", err)
		}
		h.writeError(w, detail, code)
		return
	}

	h.writeJSON(w, http.StatusOK, models.PredictResponse{
		Text:       req.Text,
		Score:      verdict.Score,
		Sentiment:  verdict.Sentiment,
		Confidence: verdict.Confidence,
		User:       claims.Username(),
	})
}

// classificationError maps a classification failure to a detail message and status
func classificationError(err error) (string, int) {
	switch {
	case errors.Is(err, services.ErrEmptyInput):
		return "Text must not be empty", http.StatusBadRequest
	case errors.Is(err, services.ErrModelWarmingUp):
		return "Model is loading, retry in 20-30 seconds", http.StatusInternalServerError
	case errors.Is(err, services.ErrProviderAuthFailure):
		return "Sentiment provider rejected the API key (check HF_API_KEY)", http.StatusInternalServerError
	case errors.Is(err, services.ErrProviderNotConfigured):
		return "HF_API_KEY is not configured", http.StatusInternalServerError
	case errors.Is(err, services.ErrNoPrediction):
		return "No prediction returned by the model", http.StatusInternalServerError
	default:
		return err.Error(), http.StatusInternalServerError
	}
}
