package auth

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the active login token across process restarts.
type TokenStore interface {
	Read() (string, error) // "" when no token is stored
	Write(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file, mode 0600.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTokenStore is an in-process TokenStore for tests.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Read() (string, error) { return s.token, nil }
func (s *MemoryTokenStore) Write(t string) error { s.token = t; return nil }
func (s *MemoryTokenStore) Clear() error { s.token = ""; return nil }
