// ABOUTME: Configuration loader for the sentiment API service
// ABOUTME: Loads settings from environment variables with defaults and validates required secrets

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultModel is the multilingual 1-5 star sentiment model
const DefaultModel = "nlptown/bert-base-multilingual-uncased-sentiment"

// SupportedAlgorithms lists the HMAC signing algorithms accepted for ALGORITHM
var SupportedAlgorithms = []string{"HS256", "HS384", "HS512"}

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Token signing
	JWTSecret                string
	Algorithm                string // HS256, HS384 or HS512
	AccessTokenExpireMinutes int

	// Credentials
	CredentialsFile string // optional YAML user table

	// Hugging Face inference provider
	HFAPIKey   string
	HFModel    string
	HFAPIURL   string
	HFTimeout  int    // seconds
	HFAllProxy string // ssh+socks5://user@host:port?private-key=/path
}

// ProviderConfigured returns true if the inference provider key is set
func (c *Config) ProviderConfigured() bool {
	return c.HFAPIKey != ""
}

// AccessTokenTTL returns the token lifetime as a duration
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// ProviderTimeout returns the provider HTTP timeout as a duration
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.HFTimeout) * time.Second
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		JWTSecret: os.Getenv("JWT_SECRET"),
		Algorithm: strings.ToUpper(strings.TrimSpace(os.Getenv("ALGORITHM"))),

		CredentialsFile: os.Getenv("CREDENTIALS_FILE"),

		HFAPIKey:   os.Getenv("HF_API_KEY"),
		HFModel:    getEnv("HF_MODEL", DefaultModel),
		HFAPIURL:   strings.TrimRight(getEnv("HF_API_URL", "https://router.huggingface.co/hf-inference/models"), "/"),
		HFTimeout:  getEnvInt("HF_TIMEOUT_SECONDS", 30),
		HFAllProxy: os.Getenv("HF_ALL_PROXY"),
	}

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Algorithm == "" {
		return nil, fmt.Errorf("ALGORITHM is required")
	}
	if !isSupportedAlgorithm(cfg.Algorithm) {
		return nil, fmt.Errorf("ALGORITHM %q is not supported (must be one of %s)", cfg.Algorithm, strings.Join(SupportedAlgorithms, ", "))
	}

	expire := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")
	if expire == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES is required")
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(expire))
	if err != nil {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be an integer, got %q", expire)
	}
	if minutes < 1 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", minutes)
	}
	cfg.AccessTokenExpireMinutes = minutes

	if cfg.HFTimeout < 1 || cfg.HFTimeout > 600 {
		return nil, fmt.Errorf("HF_TIMEOUT_SECONDS must be between 1 and 600, got %d", cfg.HFTimeout)
	}

	return cfg, nil
}

func isSupportedAlgorithm(alg string) bool {
	for _, a := range SupportedAlgorithms {
		if a == alg {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
