// ABOUTME: Shared test fixtures for handler tests
// ABOUTME: Provides fake token issuers, fake classifiers and request helpers

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/markalston/sentiment-analyzer/middleware"
	"github.com/markalston/sentiment-analyzer/models"
	"github.com/markalston/sentiment-analyzer/services"
)

// fakeIssuer returns a fixed token or error and records the credentials it saw
type fakeIssuer struct {
	token    string
	err      error
	username string
	password string
}

func (f *fakeIssuer) Issue(_ context.Context, username, password string) (string, error) {
	f.username, f.password = username, password
	return f.token, f.err
}

// fakeClassifier returns a fixed verdict or error and records the text it saw
type fakeClassifier struct {
	verdict *models.SentimentVerdict
	err     error
	text    string
	calls   int
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (*models.SentimentVerdict, error) {
	f.calls++
	f.text = text
	return f.verdict, f.err
}

// doRequest runs handler against a request built from method, path and body
func doRequest(t *testing.T, handler http.HandlerFunc, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// newAuthedPredict wraps h.Predict in the auth middleware and returns a
// token accepted by it
func newAuthedPredict(t *testing.T, h *Handler, subject string) (http.HandlerFunc, string) {
	t.Helper()

	tokens, err := services.NewTokenService("handler-test-secret", "HS256", time.Hour,
		services.NewMemoryCredentialStore(nil))
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	token, err := tokens.Sign(subject, time.Hour)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	return middleware.Auth(middleware.AuthConfig{Verifier: tokens})(h.Predict), token
}
