// ABOUTME: Bearer token authentication middleware
// ABOUTME: Extracts the Authorization header, verifies the token and stores claims in the request context

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/markalston/sentiment-analyzer/models"
	"github.com/markalston/sentiment-analyzer/services"
)

// TokenVerifier validates a presented bearer token
type TokenVerifier interface {
	Verify(token string) (*models.TokenClaims, error)
}

// AuthConfig holds authentication middleware settings
type AuthConfig struct {
	Verifier TokenVerifier
}

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const userClaimsKey contextKey = "userClaims"

// ExtractBearerToken returns the token from an Authorization header value.
// An empty header yields ErrMissingCredentials; anything other than
// "Bearer <token>" yields ErrMalformedHeader.
func ExtractBearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", services.ErrMissingCredentials
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", services.ErrMalformedHeader
	}
	return parts[1], nil
}

// Auth returns middleware that rejects requests without a valid bearer token.
// Verified claims are available to the wrapped handler via GetUserClaims.
func Auth(cfg AuthConfig) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			path := sanitizePath(r.URL.Path)

			token, err := ExtractBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				slog.Debug("Auth rejected: bad authorization header", "path", path, "error", err.Error())
				writeUnauthorized(w, authDetail(err))
				return
			}

			claims, err := cfg.Verifier.Verify(token)
			if err != nil {
				slog.Debug("Auth rejected: invalid token", "path", path, "error", err.Error())
				writeUnauthorized(w, authDetail(err))
				return
			}

			slog.Debug("Auth: valid bearer token", "path", path, "user", claims.Username())
			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUserClaims extracts verified claims from the request context.
// Returns nil if no claims are present.
func GetUserClaims(r *http.Request) *models.TokenClaims {
	claims, ok := r.Context().Value(userClaimsKey).(*models.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}

// authDetail maps an auth error to the client-facing message
func authDetail(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		return "Not authenticated"
	case errors.Is(err, services.ErrMalformedHeader):
		return "Invalid authorization header format"
	default:
		return "Invalid or expired token"
	}
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(w, detail, http.StatusUnauthorized)
}
