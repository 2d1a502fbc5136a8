// ABOUTME: Tests for the Hugging Face inference client
// ABOUTME: Uses httptest to mock provider responses and failure modes

package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markalston/sentiment-analyzer/models"
)

const testModel = "nlptown/bert-base-multilingual-uncased-sentiment"

// newTestProvider starts a provider stub and returns a client pointed at it
func newTestProvider(t *testing.T, handler http.HandlerFunc) *HuggingFaceClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHuggingFaceClient(server.URL+"/models/", "hf_test_key", testModel, 5*time.Second, nil)
}

func TestHuggingFaceClient_Classify_NestedResponse(t *testing.T) {
	client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/"+testModel, r.URL.Path)
		assert.Equal(t, "Bearer hf_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "i love this product", body["inputs"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[[{"label":"5 stars","score":0.87},{"label":"4 stars","score":0.1},{"label":"1 star","score":0.03}]]`)
	})

	results, err := client.Classify(context.Background(), "i love this product")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, models.LabelScore{Label: "5 stars", Score: 0.87}, results[0])
}

func TestHuggingFaceClient_Classify_FlatResponse(t *testing.T) {
	client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"label":"3 stars","score":0.7}]`)
	})

	results, err := client.Classify(context.Background(), "meh")
	require.NoError(t, err)
	assert.Equal(t, []models.LabelScore{{Label: "3 stars", Score: 0.7}}, results)
}

func TestHuggingFaceClient_Classify_EmptyResponse(t *testing.T) {
	for _, body := range []string{`[]`, `[[]]`, `null`} {
		client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		})

		results, err := client.Classify(context.Background(), "text")
		require.NoError(t, err, body)
		assert.Empty(t, results, body)

		_, err = Normalize(results)
		assert.ErrorIs(t, err, ErrNoPrediction, body)
	}
}

func TestHuggingFaceClient_Classify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"model loading 503", http.StatusServiceUnavailable, `{"error":"Model nlptown/bert is currently loading","estimated_time":20.0}`, ErrModelWarmingUp},
		{"503 without body", http.StatusServiceUnavailable, ``, ErrModelWarmingUp},
		{"loading message on other status", http.StatusBadRequest, `{"error":"Model is loading"}`, ErrModelWarmingUp},
		{"unauthorized", http.StatusUnauthorized, `{"error":"Invalid credentials in Authorization header"}`, ErrProviderAuthFailure},
		{"unauthorized message", http.StatusBadRequest, `{"error":"Unauthorized"}`, ErrProviderAuthFailure},
		{"server error", http.StatusInternalServerError, `{"error":"CUDA out of memory"}`, ErrProviderError},
		{"not found", http.StatusNotFound, `Not Found`, ErrProviderError},
		{"ok with error object", http.StatusOK, `{"error":"something odd"}`, ErrProviderError},
		{"ok with garbage", http.StatusOK, `<html>`, ErrProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := client.Classify(context.Background(), "text")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHuggingFaceClient_Classify_ProviderMessageIsKept(t *testing.T) {
	client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"CUDA out of memory"}`)
	})

	_, err := client.Classify(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CUDA out of memory")
}

func TestHuggingFaceClient_Classify_NotConfigured(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewHuggingFaceClient(server.URL, "", testModel, time.Second, nil)

	_, err := client.Classify(context.Background(), "text")
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
	assert.False(t, called, "provider should not be called without an API key")
}

func TestHuggingFaceClient_Classify_ConnectionError(t *testing.T) {
	client := NewHuggingFaceClient("http://127.0.0.1:1", "hf_test_key", testModel, time.Second, nil)

	_, err := client.Classify(context.Background(), "text")
	assert.ErrorIs(t, err, ErrProviderError)
}

func TestHuggingFaceClient_Classify_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	client := NewHuggingFaceClient(server.URL, "hf_test_key", testModel, 50*time.Millisecond, nil)

	_, err := client.Classify(context.Background(), "text")
	assert.ErrorIs(t, err, ErrProviderError)
}

func TestHuggingFaceClient_Classify_ContextCancellation(t *testing.T) {
	client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Classify(ctx, "text")
	assert.ErrorIs(t, err, ErrProviderError)
}
