package gateway

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// KeyStore gates access to the generation service. It mirrors the host
// capability pair hasCredential/requestCredential: the engine only asks
// whether a key exists and lets the user install one.
type KeyStore interface {
	HasKey() bool
	Key() string
	SetKey(key string) error
}

// ErrEmptyKey rejects an attempt to install a blank credential.
var ErrEmptyKey = errors.New("api key must not be empty")

// EnvKeyStore reads the key from an environment variable once and allows an
// in-process override via SetKey. Nothing is persisted.
type EnvKeyStore struct {
	mu  sync.RWMutex
	key string
}

func NewEnvKeyStore(envVar string) *EnvKeyStore {
	return &EnvKeyStore{key: strings.TrimSpace(os.Getenv(envVar))}
}

func (s *EnvKeyStore) HasKey() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != ""
}

func (s *EnvKeyStore) Key() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

func (s *EnvKeyStore) SetKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()
	return nil
}
