// ABOUTME: Error taxonomy for token and classification services
// ABOUTME: Sentinel errors matched with errors.Is at the HTTP boundary

package services

import "errors"

// Auth errors
var (
	// ErrInvalidCredentials is returned for any username/password mismatch.
	// It never distinguishes an unknown user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingCredentials indicates no token was presented
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrMalformedHeader indicates an Authorization header not shaped "Bearer <token>"
	ErrMalformedHeader = errors.New("malformed authorization header")
	// ErrInvalidOrExpiredToken covers bad signatures, bad structure, expiry and missing subject
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	// ErrUserNotFound is returned by CredentialStore lookups for unknown users
	ErrUserNotFound = errors.New("user not found")
)

// Classification errors
var (
	ErrEmptyInput            = errors.New("text must not be empty")
	ErrNoPrediction          = errors.New("no prediction returned by the model")
	ErrModelWarmingUp        = errors.New("model is loading, retry in 20-30 seconds")
	ErrProviderAuthFailure   = errors.New("inference provider API key is invalid or expired")
	ErrProviderError         = errors.New("inference provider error")
	ErrProviderNotConfigured = errors.New("HF_API_KEY is not configured")
)
