// ABOUTME: Predict command for the sentiment CLI
// ABOUTME: Classifies text with a bearer token and renders the verdict

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/markalston/sentiment-analyzer/cli/internal/client"
	"github.com/markalston/sentiment-analyzer/cli/internal/styles"
)

var predictToken string

var predictCmd = &cobra.Command{
	Use:   "predict <text>",
	Short: "Classify the sentiment of a text",
	Long: `Send text to the API and print its sentiment verdict.

The bearer token comes from --token or SENTIMENT_TOKEN.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPredict(ctx, os.Stdout, strings.Join(args, " "))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
	predictCmd.Flags().StringVar(&predictToken, "token", "", "Bearer token (overrides SENTIMENT_TOKEN)")
}

// getToken returns the token from flag or env
func getToken() string {
	if predictToken != "" {
		return predictToken
	}
	return os.Getenv("SENTIMENT_TOKEN")
}

// runPredict classifies text and returns exit code
func runPredict(ctx context.Context, w io.Writer, text string) int {
	token := getToken()
	if token == "" {
		fmt.Fprintln(w, "Error: no token; run 'sentiment login' and set SENTIMENT_TOKEN or pass --token")
		return exitError
	}

	c := client.New(GetAPIURL())
	resp, err := c.Predict(ctx, token, text)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatPredictJSON(resp))
	} else {
		fmt.Fprintln(w, formatPredictHuman(resp))
	}
	return exitOK
}

// formatPredictHuman renders the verdict as a small panel
func formatPredictHuman(resp *client.PredictResponse) string {
	filled := clampStars(resp.Score)
	stars := strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
	rows := []string{
		styles.Label.Render("Text") + resp.Text,
		styles.Label.Render("Sentiment") + styles.Sentiment(resp.Sentiment).Render(resp.Sentiment),
		styles.Label.Render("Score") + fmt.Sprintf("%s (%d/5)", stars, resp.Score),
		styles.Label.Render("Confidence") + fmt.Sprintf("%.1f%%", resp.Confidence*100),
		styles.Label.Render("User") + resp.User,
	}
	return styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func clampStars(score int) int {
	return max(0, min(score, 5))
}

// formatPredictJSON formats the verdict as JSON
func formatPredictJSON(resp *client.PredictResponse) string {
	data, _ := json.MarshalIndent(resp, "", "  ")
	return string(data)
}
