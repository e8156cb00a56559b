// Package storage provides the key-value persistence port and its
// file-backed implementation. The core packages only ever see the KV
// interface; where the bytes land is this package's business.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// KV is the persistence port. Get reports ok=false when the key has
// never been written, which callers treat as first-run defaults.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKV stores each key as a JSON document in a directory
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// DefaultDir returns the per-user data directory
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tasktide"), nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads a key's document
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes a key's document
func (f *FileKV) Set(key string, value []byte) error {
	if err := os.WriteFile(f.path(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes a key's document; deleting an absent key is a no-op
func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// MemKV is an in-memory KV for tests
type MemKV struct {
	data map[string][]byte
}

// NewMemKV creates an empty in-memory store
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *MemKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}
