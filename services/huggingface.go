// ABOUTME: Hugging Face inference API client for text classification
// ABOUTME: Posts text to the hosted model and maps provider failures to the classification error taxonomy

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/markalston/sentiment-analyzer/models"
)

// maxResponseBytes bounds how much of a provider response is read
const maxResponseBytes = 1 << 20

// TextClassifier returns raw label/score pairs for a piece of text
type TextClassifier interface {
	Classify(ctx context.Context, text string) ([]models.LabelScore, error)
}

// Compile-time interface satisfaction check.
var _ TextClassifier = (*HuggingFaceClient)(nil)

// HuggingFaceClient calls a hosted text-classification model
type HuggingFaceClient struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// NewHuggingFaceClient creates a provider client.
// dial is optional and replaces the transport dialer (used for proxy egress).
func NewHuggingFaceClient(apiURL, apiKey, model string, timeout time.Duration, dial DialContextFunc) *HuggingFaceClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if dial != nil {
		transport.DialContext = dial
	}

	return &HuggingFaceClient{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Model returns the configured model identifier
func (c *HuggingFaceClient) Model() string {
	return c.model
}

// inferenceRequest is the request body for the inference endpoint
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// inferenceError is the error body returned by the inference endpoint
type inferenceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// Classify sends text to the model and returns its label/score pairs
func (c *HuggingFaceClient) Classify(ctx context.Context, text string) ([]models.LabelScore, error) {
	if c.apiKey == "" {
		return nil, ErrProviderNotConfigured
	}

	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrProviderError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/"+c.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrProviderError, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderError, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrProviderError, err)
	}

	slog.Debug("Provider call completed",
		"model", c.model,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, providerFailure(resp.StatusCode, data)
	}

	return parseClassification(data)
}

// providerFailure maps a non-OK provider response to a classification error
func providerFailure(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	var errBody inferenceError
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
		message = errBody.Error
	}
	lower := strings.ToLower(message)

	switch {
	case status == http.StatusServiceUnavailable || strings.Contains(lower, "loading"):
		if errBody.EstimatedTime > 0 {
			return fmt.Errorf("%w (estimated %.0fs)", ErrModelWarmingUp, errBody.EstimatedTime)
		}
		return ErrModelWarmingUp
	case status == http.StatusUnauthorized || strings.Contains(lower, "unauthorized"):
		return ErrProviderAuthFailure
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return fmt.Errorf("%w: status %d: %s", ErrProviderError, status, message)
	}
}

// parseClassification accepts both the nested ([[...]]) shape returned for a
// single input and the flat ([...]) shape.
func parseClassification(data []byte) ([]models.LabelScore, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return nil, providerFailure(http.StatusOK, trimmed)
	}

	var nested [][]models.LabelScore
	if err := json.Unmarshal(trimmed, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}

	var flat []models.LabelScore
	if err := json.Unmarshal(trimmed, &flat); err != nil {
		return nil, fmt.Errorf("%w: unexpected response format: %v", ErrProviderError, err)
	}
	return flat, nil
}
