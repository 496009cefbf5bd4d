package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage keeps one JSON file per key under a data directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating storage dir: %w", err)
	}

	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path(key))

	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("error reading key %s: %w", key, err)
	}

	return string(data), nil
}

func (s *FileStorage) Set(ctx context.Context, key string, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("error writing key %s: %w", key, err)
	}

	return nil
}

func (s *FileStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting key %s: %w", key, err)
	}

	return nil
}

func (s *FileStorage) Close() error { return nil }
