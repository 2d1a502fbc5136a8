// ABOUTME: Login command for the sentiment CLI
// ABOUTME: Exchanges credentials for a bearer token, prompting for the password when omitted

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/markalston/sentiment-analyzer/cli/internal/client"
	"github.com/markalston/sentiment-analyzer/cli/internal/styles"
)

var (
	loginUsername string
	loginPassword string
)

// promptPassword asks for the password interactively; replaced in tests
var promptPassword = func(username string) (string, error) {
	var password string
	err := huh.NewInput().
		Title(fmt.Sprintf("Password for %s", username)).
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Run()
	return password, err
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain a bearer token",
	Long: `Log in with a username and password and print a bearer token.

The password is prompted for when --password is not given. Export the token
as SENTIMENT_TOKEN to use it with predict.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")
}

// runLogin executes the login and returns exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if loginUsername == "" {
		fmt.Fprintln(w, "Error: --username is required")
		return exitError
	}

	password := loginPassword
	if password == "" {
		var err error
		password, err = promptPassword(loginUsername)
		if err != nil {
			fmt.Fprintf(w, "Error: reading password: %v\n", err)
			return exitError
		}
	}

	c := client.New(GetAPIURL())
	resp, err := c.Login(ctx, loginUsername, password)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatLoginJSON(resp))
	} else {
		fmt.Fprintln(w, formatLoginHuman(resp))
	}
	return exitOK
}

// formatLoginHuman formats a login response for human readability
func formatLoginHuman(resp *client.LoginResponse) string {
	return fmt.Sprintf("%s %s\n\nexport SENTIMENT_TOKEN=%s",
		styles.StatusOK.Render("Logged in as"),
		resp.Username,
		resp.AccessToken)
}

// formatLoginJSON formats a login response as JSON
func formatLoginJSON(resp *client.LoginResponse) string {
	data, _ := json.MarshalIndent(resp, "", "  ")
	return string(data)
}
