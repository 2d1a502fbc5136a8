// ABOUTME: HTTP client for the Sentiment Analysis API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the API client for the sentiment backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// LoginResponse represents the /login endpoint response
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// PredictResponse represents the /predict endpoint response
type PredictResponse struct {
	Text       string  `json:"text"`
	Score      int     `json:"score"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	User       string  `json:"user"`
}

// MessageResponse represents the / liveness response
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the /health endpoint response
type HealthResponse struct {
	Status             string `json:"status"`
	ProviderConfigured bool   `json:"provider_configured"`
	Model              string `json:"model"`
}

// EnvCheckResponse represents the /test-env endpoint response
type EnvCheckResponse struct {
	HFKeyConfigured     bool `json:"hf_key_configured"`
	JWTSecretConfigured bool `json:"jwt_secret_configured"`
}

// ErrorResponse represents an API error body
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   int    `json:"code"`
}

// APIError is returned when the backend answers with a non-OK status
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Detail)
}

// Login calls POST /login
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Predict calls POST /predict with a bearer token
func (c *Client) Predict(ctx context.Context, token, text string) (*PredictResponse, error) {
	var out PredictResponse
	if err := c.do(ctx, http.MethodPost, "/predict", token, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Root calls GET /
func (c *Client) Root(ctx context.Context) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodGet, "/", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health calls GET /health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnvCheck calls GET /test-env
func (c *Client) EnvCheck(ctx context.Context) (*EnvCheckResponse, error) {
	var out EnvCheckResponse
	if err := c.do(ctx, http.MethodGet, "/test-env", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends a JSON request and decodes a JSON response into out
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		apiErr.Detail = errResp.Detail
	}
	return apiErr
}
