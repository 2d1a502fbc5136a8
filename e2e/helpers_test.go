// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds the full service stack from environment config against a mock inference provider

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/markalston/sentiment-analyzer/config"
	"github.com/markalston/sentiment-analyzer/handlers"
	"github.com/markalston/sentiment-analyzer/services"
)

// withTestEnv sets the required auth variables plus additional vars,
// returning a cleanup function that restores all original values.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(withTestEnv(t, map[string]string{
//	        "CORS_ALLOWED_ORIGINS": "https://example.com",
//	    }))
//	}
func withTestEnv(t *testing.T, extra map[string]string) func() {
	t.Helper()

	values := map[string]string{
		"JWT_SECRET":                  "e2e-test-secret",
		"ALGORITHM":                   "HS256",
		"ACCESS_TOKEN_EXPIRE_MINUTES": "30",
		"HF_API_KEY":                  "",
		"HF_API_URL":                  "",
		"HF_MODEL":                    "",
		"HF_ALL_PROXY":                "",
		"CREDENTIALS_FILE":            "",
		"CORS_ALLOWED_ORIGINS":        "http://localhost:3000",
	}
	for key, value := range extra {
		values[key] = value
	}

	type original struct {
		value string
		set   bool
	}
	originals := make(map[string]original, len(values))
	for key := range values {
		value, set := os.LookupEnv(key)
		originals[key] = original{value, set}
	}

	for key, value := range values {
		if value == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, value)
		}
	}

	return func() {
		for key, orig := range originals {
			if orig.set {
				os.Setenv(key, orig.value)
			} else {
				os.Unsetenv(key)
			}
		}
	}
}

// newMockProvider serves a fixed inference response and counts calls
func newMockProvider(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Header.Get("Authorization") != "Bearer hf_e2e_key" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error":"Invalid credentials in Authorization header"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

// newTestServer assembles the service the way main does, from the current environment
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	credentials, err := services.DefaultCredentialStore()
	if err != nil {
		t.Fatalf("DefaultCredentialStore() error = %v", err)
	}
	if cfg.CredentialsFile != "" {
		fileStore, err := services.LoadCredentialFile(cfg.CredentialsFile)
		if err != nil {
			t.Fatalf("LoadCredentialFile() error = %v", err)
		}
		credentials = fileStore
	}

	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.Algorithm, cfg.AccessTokenTTL(), credentials)
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}

	provider := services.NewHuggingFaceClient(cfg.HFAPIURL, cfg.HFAPIKey, cfg.HFModel, cfg.ProviderTimeout(), nil)
	h := handlers.NewHandler(cfg, tokens, services.NewSentimentService(provider))

	server := httptest.NewServer(handlers.NewRouter(h, handlers.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Verifier:       tokens,
	}))
	t.Cleanup(server.Close)
	return server
}

// postJSON sends body as JSON with optional bearer token and decodes the response into out
func postJSON(t *testing.T, url, token string, body, out any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

// login exchanges credentials for a token and fails the test on error
func login(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	httpResp := postJSON(t, baseURL+"/login", "", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if httpResp.StatusCode != http.StatusOK {
		t.Fatalf("login as %s: status %d", username, httpResp.StatusCode)
	}
	return resp.AccessToken
}
