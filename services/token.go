// ABOUTME: Bearer token issuance and verification with HMAC-signed JWTs
// ABOUTME: Stateless: tokens carry subject and expiry, nothing is stored server-side

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/markalston/sentiment-analyzer/models"
)

// dummyHash is compared against when a username is unknown so that unknown
// users and wrong passwords take comparable time.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return hash
})

// TokenService issues and verifies access tokens against a credential store
type TokenService struct {
	credentials CredentialStore
	secret      []byte
	method      *jwt.SigningMethodHMAC
	ttl         time.Duration
	now         func() time.Time
}

// TokenOption customizes a TokenService
type TokenOption func(*TokenService)

// WithClock overrides the time source used for issuance and expiry checks
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService creates a token service signing with the given HMAC algorithm.
// Returns an error for an empty secret, a non-HMAC algorithm or a non-positive TTL.
func NewTokenService(secret, algorithm string, ttl time.Duration, credentials CredentialStore, opts ...TokenOption) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q: only HS256, HS384, HS512 are allowed", algorithm)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", ttl)
	}
	if credentials == nil {
		return nil, fmt.Errorf("credential store is required")
	}

	s := &TokenService{
		credentials: credentials,
		secret:      []byte(secret),
		method:      method,
		ttl:         ttl,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue checks username and password and returns a signed token for username.
// Every mismatch returns ErrInvalidCredentials.
func (s *TokenService) Issue(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	hash, err := s.credentials.Lookup(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("looking up credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.Sign(username, s.ttl)
}

// Sign creates a token for subject expiring ttl from now without checking
// credentials. A negative ttl yields an already expired token.
func (s *TokenService) Sign(subject string, ttl time.Duration) (string, error) {
	now := s.now().UTC()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns its claims.
// The token is valid only while its expiry is strictly after the current UTC time.
func (s *TokenService) Verify(tokenString string) (*models.TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingCredentials
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrExpiredToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidOrExpiredToken
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidOrExpiredToken)
	}

	return claims, nil
}

// TTL returns the lifetime of issued tokens
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
