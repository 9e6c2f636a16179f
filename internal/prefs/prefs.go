// Package prefs is a small file-backed preference store, the client's
// equivalent of a mobile app's key-value preferences. Values live in one
// yaml file rewritten on every change.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

type values struct {
	SessionToken string `yaml:"session_token,omitempty"`
}

// Store reads and writes the preference file at a fixed path.
type Store struct {
	path string

	mu   sync.Mutex
	vals values
}

// NewStore loads the preference file if it exists; a missing file is an
// empty store, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s.vals); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	return s, nil
}

// SessionToken returns the persisted session token, empty if none.
func (s *Store) SessionToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vals.SessionToken
}

// SetSessionToken persists the session token.
func (s *Store) SetSessionToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.SessionToken = token
	return s.save()
}

// ClearSessionToken removes the persisted session token.
func (s *Store) ClearSessionToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.SessionToken = ""
	return s.save()
}

// save is called with mu held.
func (s *Store) save() error {
	raw, err := yaml.Marshal(s.vals)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
