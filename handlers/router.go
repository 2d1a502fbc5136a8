// ABOUTME: Router assembly for the route table
// ABOUTME: Wraps every route in CORS and request logging, and protected routes in bearer auth

package handlers

import (
	"net/http"

	"github.com/markalston/sentiment-analyzer/middleware"
)

// RouterConfig holds the cross-cutting settings applied to every route
type RouterConfig struct {
	AllowedOrigins []string
	Verifier       middleware.TokenVerifier
}

// NewRouter registers h.Routes() on a new ServeMux.
// Middleware order is CORS, then logging, then auth for protected routes.
func NewRouter(h *Handler, cfg RouterConfig) *http.ServeMux {
	cors := middleware.CORSWithConfig(cfg.AllowedOrigins)
	auth := middleware.Auth(middleware.AuthConfig{Verifier: cfg.Verifier})

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		chain := []func(http.HandlerFunc) http.HandlerFunc{cors, middleware.LogRequest}
		if route.Protected {
			chain = append(chain, auth)
		}
		mux.HandleFunc(routePattern(route), middleware.Chain(route.Handler, chain...))
	}

	// Preflight for any path; CORS answers before the handler runs
	mux.HandleFunc("OPTIONS /", middleware.Chain(func(http.ResponseWriter, *http.Request) {}, cors, middleware.LogRequest))

	return mux
}

// routePattern builds a ServeMux pattern; "/" matches only the root path
func routePattern(route Route) string {
	path := route.Path
	if path == "/" {
		path = "/{$}"
	}
	return route.Method + " " + path
}
