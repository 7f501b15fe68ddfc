package apiclient

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// CredentialStore persists the bearer token and profile between runs.
// Load runs once at construction; Clear wipes the file on logout. A missing
// or unparsable file just means "not authenticated".
type CredentialStore struct {
	path  string
	token string
	user  *User
}

type storedCredentials struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// NewCredentialStore opens (and loads) the store at path. An empty path
// falls back to auth.json under the user config directory.
func NewCredentialStore(path string) (*CredentialStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "portfolio", "auth.json")
	}

	s := &CredentialStore{path: path}
	s.load()
	return s, nil
}

func (s *CredentialStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var creds storedCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return
	}
	s.token = creds.Token
	s.user = creds.User
}

// Save persists the credentials and keeps them in memory.
func (s *CredentialStore) Save(token string, user *User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(storedCredentials{Token: token, User: user})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}

	s.token = token
	s.user = user
	return nil
}

// Clear forgets the credentials and removes the file.
func (s *CredentialStore) Clear() error {
	s.token = ""
	s.user = nil

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Token returns the stored bearer token, empty when unauthenticated.
func (s *CredentialStore) Token() string {
	return s.token
}

// User returns the stored profile, nil when unauthenticated.
func (s *CredentialStore) User() *User {
	return s.user
}

// Authenticated reports whether a token is present.
func (s *CredentialStore) Authenticated() bool {
	return s.token != ""
}
