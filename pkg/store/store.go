// Package store is the persistent key/value layer every huddle component
// reads and writes through. Values are JSON documents replaced whole on
// each write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Store persists opaque values under string keys.
type Store interface {
	// Read returns ErrAbsent when key has never been written or was cleared.
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Clear(key string) error
}

// ErrAbsent is returned by Read for unset keys.
var ErrAbsent = errors.New("store: key not set")

// ReadError means a stored value exists but cannot be decoded. Callers
// treat the key as absent and carry on.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store: decode %q: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Get decodes the value at key into a T. found is false when the key is
// unset; a value that fails to decode is reported as *ReadError.
func Get[T any](s Store, key string) (value T, found bool, err error) {
	data, err := s.Read(key)
	if errors.Is(err, ErrAbsent) {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return value, false, &ReadError{Key: key, Err: err}
	}
	return decoded, true, nil
}

// Put encodes v and replaces whatever was stored at key.
func Put[T any](s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	return s.Write(key, data)
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}
