package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// ErrNotFound is returned by a Backend when a key has never been written
var ErrNotFound = errors.New("key not found")

// Backend is a durable string-keyed store
type Backend interface {
	Read(key string) (string, error)
	Write(key, value string) error
	Delete(key string) error
}

// Store persists JSON-encoded values in a Backend
type Store struct {
	backend Backend
}

// NewStore creates a store over the given backend
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load decodes the value stored under key. A missing key, a read failure or
// undecodable data all yield def; failures are logged, never returned.
func Load[T any](s *Store, key string, def T) T {
	raw, err := s.backend.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Warning: could not read %q: %v", key, err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Printf("Warning: invalid JSON stored under %q, using defaults: %v", key, err)
		return def
	}
	return value
}

// Save encodes value and writes it under key. The error is logged before it
// is returned so callers that keep going on failure need not log it again.
func (s *Store) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		err = fmt.Errorf("failed to encode %q: %w", key, err)
		log.Printf("Warning: %v", err)
		return err
	}

	if err := s.backend.Write(key, string(data)); err != nil {
		err = fmt.Errorf("failed to write %q: %w", key, err)
		log.Printf("Warning: %v", err)
		return err
	}
	return nil
}

// Remove deletes the value stored under key
func (s *Store) Remove(key string) error {
	if err := s.backend.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
