package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes uploads to a directory on disk and returns a /media URL
// served by the HTTP layer.
type LocalStore struct {
	directory string
}

func NewLocalStore(directory string) (*LocalStore, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalStore{directory: directory}, nil
}

func (s *LocalStore) Store(ctx context.Context, content io.Reader, originalFilename string) (string, error) {
	// Unique name so concurrent uploads never collide on disk.
	filename := fmt.Sprintf("%s_%d%s",
		uuid.NewString(), time.Now().UnixNano(), filepath.Ext(originalFilename))
	path := filepath.Join(s.directory, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to flush media file: %w", err)
	}

	return "/media/" + filename, nil
}
