// ABOUTME: Entry point for the sentiment CLI
// ABOUTME: Command-line client for logging in and classifying text against the API

package main

import (
	"fmt"
	"os"

	"github.com/markalston/sentiment-analyzer/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
