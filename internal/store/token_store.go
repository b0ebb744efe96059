package store

import (
	"log"
	"os"
	"strings"
	"sync"
)

// TokenStore holds the auth credential in its own slot. The API client
// layer reads it on every request and wipes it when the upstream answers
// 401.
type TokenStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

func NewTokenStore(path string, logger *log.Logger) *TokenStore {
	return &TokenStore{path: path, logger: logger}
}

// Token returns the stored credential, or "" when none is set.
func (t *TokenStore) Token() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := os.ReadFile(t.path)
	if err != nil {
		if !os.IsNotExist(err) {
			t.logger.Printf("read token slot: %v", err)
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set overwrites the stored credential.
func (t *TokenStore) Set(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return os.WriteFile(t.path, []byte(token), 0o600)
}

// Clear removes the credential slot.
func (t *TokenStore) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
