// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers and auth requirement

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method    string           // HTTP method (GET, POST, etc.)
	Path      string           // URL path (e.g., "/predict")
	Handler   http.HandlerFunc // Handler function
	Protected bool             // requires a valid bearer token
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Liveness & diagnostics
		{Method: http.MethodGet, Path: "/", Handler: h.Root},
		{Method: http.MethodGet, Path: "/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/test-env", Handler: h.TestEnv},

		// Auth
		{Method: http.MethodPost, Path: "/login", Handler: h.Login},

		// Sentiment
		{Method: http.MethodPost, Path: "/predict", Handler: h.Predict, Protected: true},

		// Documentation
		{Method: http.MethodGet, Path: "/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
