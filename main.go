// ABOUTME: Entry point for the sentiment analysis API service
// ABOUTME: Wires configuration, token issuance and the inference provider into an HTTP server

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/markalston/sentiment-analyzer/config"
	"github.com/markalston/sentiment-analyzer/handlers"
	"github.com/markalston/sentiment-analyzer/logger"
	"github.com/markalston/sentiment-analyzer/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be populated
	envErr := godotenv.Load()

	// Initialize structured logging
	logger.Init()
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		slog.Warn("Failed to read .env file", "error", envErr)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	slog.Info("Starting Sentiment Analysis API", "algorithm", cfg.Algorithm, "token_ttl", cfg.AccessTokenTTL())

	credentials, err := loadCredentials(cfg)
	if err != nil {
		return err
	}

	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.Algorithm, cfg.AccessTokenTTL(), credentials)
	if err != nil {
		return err
	}

	var dial services.DialContextFunc
	if cfg.HFAllProxy != "" {
		dial, err = services.NewProxyDialContext(cfg.HFAllProxy)
		if err != nil {
			return err
		}
	}

	if cfg.ProviderConfigured() {
		slog.Info("Inference provider configured", "url", cfg.HFAPIURL, "model", cfg.HFModel)
	} else {
		slog.Warn("HF_API_KEY not set, /predict will fail until it is configured")
	}
	if err := services.ValidateModelName(cfg.HFModel); err != nil {
		return err
	}
	provider := services.NewHuggingFaceClient(cfg.HFAPIURL, cfg.HFAPIKey, cfg.HFModel, cfg.ProviderTimeout(), dial)

	h := handlers.NewHandler(cfg, tokens, services.NewSentimentService(provider))
	router := handlers.NewRouter(h, handlers.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Verifier:       tokens,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Leaves room for a full provider timeout
		WriteTimeout: cfg.ProviderTimeout() + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// loadCredentials returns the file-backed store when CREDENTIALS_FILE is set,
// otherwise the built-in accounts
func loadCredentials(cfg *config.Config) (services.CredentialStore, error) {
	if cfg.CredentialsFile != "" {
		store, err := services.LoadCredentialFile(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		slog.Info("Loaded credentials file", "path", cfg.CredentialsFile, "users", store.Len())
		return store, nil
	}

	store, err := services.DefaultCredentialStore()
	if err != nil {
		return nil, err
	}
	slog.Info("Using built-in accounts", "users", store.Len())
	return store, nil
}
