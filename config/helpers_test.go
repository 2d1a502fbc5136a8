// ABOUTME: Test helpers for config tests
// ABOUTME: Provides utilities for environment variable management

package config

import (
	"os"
	"testing"
)

// withCleanAuthEnv clears the environment, sets required token env vars to
// test values, and returns a cleanup function that restores the original env.
// Use with t.Cleanup().
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(withCleanAuthEnv(t))
//	    // Environment is cleared, JWT_SECRET, ALGORITHM, ACCESS_TOKEN_EXPIRE_MINUTES are set
//	}
func withCleanAuthEnv(t *testing.T) func() {
	t.Helper()
	return withCleanAuthEnvAndExtra(t, nil)
}

// withCleanAuthEnvAndExtra clears the environment, sets required token env
// vars plus additional vars, and returns a cleanup function that restores the
// original env. An empty value in extra unsets that key. Use with t.Cleanup().
func withCleanAuthEnvAndExtra(t *testing.T, extra map[string]string) func() {
	t.Helper()

	// Save entire environment
	originalEnv := os.Environ()

	// Clear environment for clean slate
	os.Clearenv()

	os.Setenv("JWT_SECRET", "testsecret")
	os.Setenv("ALGORITHM", "HS256")
	os.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")

	for key, value := range extra {
		if value == "" {
			os.Unsetenv(key)
			continue
		}
		os.Setenv(key, value)
	}

	// Return cleanup function that restores original environment
	return func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i := 0; i < len(env); i++ {
				if env[i] == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}
}
