// ABOUTME: Root command for the sentiment CLI
// ABOUTME: Handles global flags, configuration and exit code mapping

package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/sentiment-analyzer/cli/internal/client"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8000"

// Exit codes shared by all commands
const (
	exitOK       = 0
	exitRejected = 1
	exitError    = 2
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "CLI for the Sentiment Analysis API",
	Long: `sentiment is a command-line interface for the Sentiment Analysis API.

It logs in to obtain a bearer token and classifies text as negative, neutral or positive.

Exit codes:
  0 - Success
  1 - Request rejected by the API (bad credentials, invalid token, provider failure)
  2 - Error (connectivity, invalid input)

Environment Variables:
  SENTIMENT_API_URL  Backend API URL (default: http://localhost:8000)
  SENTIMENT_TOKEN    Bearer token used by predict when --token is not set`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides SENTIMENT_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("SENTIMENT_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// exitCodeFor maps a client error to an exit code
func exitCodeFor(err error) int {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return exitRejected
	}
	return exitError
}
