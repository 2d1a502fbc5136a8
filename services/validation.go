// ABOUTME: Input validation functions for configured and user-supplied names
// ABOUTME: Prevents URL injection via model names and log injection via usernames

package services

import (
	"fmt"
	"regexp"
	"strings"
)

// modelNamePattern matches Hugging Face model IDs ("name" or "owner/name")
var modelNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*(/[A-Za-z0-9][A-Za-z0-9._-]*)?$`)

// usernamePattern matches account names accepted in a credentials file
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._@-]*$`)

// SanitizeForLog removes control characters from strings to prevent log injection
// when including user input in log lines or error messages
func SanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1 // Remove control characters
		}
		return r
	}, s)
}

// ValidateModelName validates that a model ID is safe to place in the inference URL path.
func ValidateModelName(name string) error {
	if name == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if strings.Contains(name, "..") || !modelNamePattern.MatchString(name) {
		return fmt.Errorf("invalid model name format: %s", SanitizeForLog(name))
	}
	return nil
}

// ValidateUsername validates the format of an account name.
func ValidateUsername(name string) error {
	if name == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if !usernamePattern.MatchString(name) {
		return fmt.Errorf("invalid username format: %s", SanitizeForLog(name))
	}
	return nil
}
