// ABOUTME: HTTP handlers for the sentiment analysis API
// ABOUTME: Holds handler dependencies and the shared JSON response helpers

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/markalston/sentiment-analyzer/config"
	"github.com/markalston/sentiment-analyzer/models"
)

// maxRequestBodyBytes bounds JSON request bodies
const maxRequestBodyBytes = 64 << 10

// TokenIssuer exchanges a credential pair for a signed access token
type TokenIssuer interface {
	Issue(ctx context.Context, username, password string) (string, error)
}

// SentimentClassifier returns a normalized verdict for a piece of text
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (*models.SentimentVerdict, error)
}

type Handler struct {
	cfg       *config.Config
	tokens    TokenIssuer
	sentiment SentimentClassifier
}

// NewHandler creates a handler set. Dependencies may be nil in tests that
// only exercise the route table.
func NewHandler(cfg *config.Config, tokens TokenIssuer, sentiment SentimentClassifier) *Handler {
	return &Handler{
		cfg:       cfg,
		tokens:    tokens,
		sentiment: sentiment,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, detail string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Detail: detail,
		Code:   code,
	})
}

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
