// ABOUTME: Shared API response models
// ABOUTME: Error, liveness, health and diagnostics payloads

package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   int    `json:"code"`
}

// MessageResponse is the liveness payload served at the root path
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service readiness
type HealthResponse struct {
	Status             string `json:"status"`
	ProviderConfigured bool   `json:"provider_configured"`
	Model              string `json:"model"`
}

// EnvCheckResponse reports which secrets are configured.
// Only booleans are exposed; no part of any secret value is ever returned.
type EnvCheckResponse struct {
	HFKeyConfigured     bool `json:"hf_key_configured"`
	JWTSecretConfigured bool `json:"jwt_secret_configured"`
}
