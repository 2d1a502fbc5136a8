// ABOUTME: Health command for the sentiment CLI
// ABOUTME: Checks backend connectivity, provider readiness and configured secrets

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

	"github.com/spf13/cobra"

	"github.com/markalston/sentiment-analyzer/cli/internal/client"
	"github.com/markalston/sentiment-analyzer/cli/internal/styles"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the Sentiment Analysis API and report provider and secret configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// healthReport combines the health and environment check responses
type healthReport struct {
	Backend string                   `json:"backend"`
	Health  *client.HealthResponse   `json:"health"`
	Env     *client.EnvCheckResponse `json:"env"`
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	health, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	env, err := c.EnvCheck(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	report := healthReport{Backend: url, Health: health, Env: env}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(report))
	} else {
		fmt.Fprintln(w, formatHealthHuman(report))
	}

	return exitOK
}

// formatHealthHuman formats the health report for human readability
func formatHealthHuman(r healthReport) string {
	lines := []string{
		styles.Label.Render("Backend:") + r.Backend,
		styles.Label.Render("Status:") + styles.StatusOK.Render(r.Health.Status),
		styles.Label.Render("Model:") + r.Health.Model,
		styles.Label.Render("Provider:") + styles.Bool(r.Health.ProviderConfigured),
		styles.Label.Render("HF key:") + styles.Bool(r.Env.HFKeyConfigured),
		styles.Label.Render("JWT secret:") + styles.Bool(r.Env.JWTSecretConfigured),
	}
	return strings.Join(lines, "\n")
}

// formatHealthJSON formats the health report as JSON
func formatHealthJSON(r healthReport) string {
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}
