// ABOUTME: Credential lookup for token issuance
// ABOUTME: In-memory bcrypt hash table seeded with built-in accounts or loaded from YAML

package services

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// CredentialStore resolves a username to its stored password hash.
// Implementations return ErrUserNotFound for unknown users.
type CredentialStore interface {
	Lookup(ctx context.Context, username string) (string, error)
}

// Compile-time interface satisfaction check.
var _ CredentialStore = (*MemoryCredentialStore)(nil)

// builtinAccounts are the accounts available when no credentials file is configured
var builtinAccounts = []struct {
	username string
	password string
}{
	{"admin", "admin123"},
	{"user", "password"},
}

// MemoryCredentialStore is a read-only username to bcrypt hash table.
// Safe for concurrent use since it is never mutated after construction.
type MemoryCredentialStore struct {
	hashes map[string]string
}

// NewMemoryCredentialStore creates a store from a username to bcrypt hash map
func NewMemoryCredentialStore(hashes map[string]string) *MemoryCredentialStore {
	copied := make(map[string]string, len(hashes))
	for username, hash := range hashes {
		copied[username] = hash
	}
	return &MemoryCredentialStore{hashes: copied}
}

// DefaultCredentialStore hashes the built-in accounts once at startup
func DefaultCredentialStore() (*MemoryCredentialStore, error) {
	hashes := make(map[string]string, len(builtinAccounts))
	for _, account := range builtinAccounts {
		hash, err := HashPassword(account.password)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", account.username, err)
		}
		hashes[account.username] = hash
	}
	return NewMemoryCredentialStore(hashes), nil
}

// Lookup returns the bcrypt hash stored for username
func (s *MemoryCredentialStore) Lookup(_ context.Context, username string) (string, error) {
	hash, ok := s.hashes[username]
	if !ok {
		return "", ErrUserNotFound
	}
	return hash, nil
}

// Len returns the number of accounts in the store
func (s *MemoryCredentialStore) Len() int {
	return len(s.hashes)
}

// HashPassword returns a bcrypt hash of password at the default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// credentialFile is the YAML layout accepted by LoadCredentialFile:
//
//	users:
//	  - username: admin
//	    password_hash: $2a$10$...
type credentialFile struct {
	Users []struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"password_hash"`
	} `yaml:"users"`
}

// LoadCredentialFile reads a YAML user table of bcrypt hashes
func LoadCredentialFile(path string) (*MemoryCredentialStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var file credentialFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	if len(file.Users) == 0 {
		return nil, fmt.Errorf("credentials file %s defines no users", path)
	}

	hashes := make(map[string]string, len(file.Users))
	for i, u := range file.Users {
		if u.Username == "" {
			return nil, fmt.Errorf("credentials file entry %d: username is required", i)
		}
		if err := ValidateUsername(u.Username); err != nil {
			return nil, fmt.Errorf("credentials file entry %d: %w", i, err)
		}
		if _, err := bcrypt.Cost([]byte(u.PasswordHash)); err != nil {
			return nil, fmt.Errorf("credentials file entry %q: password_hash is not a bcrypt hash: %w", u.Username, err)
		}
		if _, dup := hashes[u.Username]; dup {
			return nil, fmt.Errorf("credentials file entry %q: duplicate username", u.Username)
		}
		hashes[u.Username] = u.PasswordHash
	}

	return NewMemoryCredentialStore(hashes), nil
}
