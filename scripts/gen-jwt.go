// ABOUTME: Generates signed bearer tokens for manual API testing
// ABOUTME: Mints valid or expired tokens with the service's own signing settings

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/markalston/sentiment-analyzer/config"
	"github.com/markalston/sentiment-analyzer/services"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <subject> <token-type>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Token types: valid, expired\n")
		os.Exit(1)
	}

	subject := os.Args[1]
	tokenType := os.Args[2]

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.Algorithm, cfg.AccessTokenTTL(),
		services.NewMemoryCredentialStore(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create token service: %v\n", err)
		os.Exit(1)
	}

	var ttl time.Duration
	switch tokenType {
	case "valid":
		ttl = cfg.AccessTokenTTL()
	case "expired":
		ttl = -time.Hour
	default:
		fmt.Fprintf(os.Stderr, "Unknown token type: %s\n", tokenType)
		os.Exit(1)
	}

	token, err := tokens.Sign(subject, ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(token)
}
