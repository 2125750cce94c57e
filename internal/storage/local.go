package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements BlobStorage on the local filesystem. Blobs are
// saved under uploadsDir/images and served by the blob HTTP handler, so the
// public URLs it hands out stay valid for the life of the file.
type LocalStorage struct {
	baseURL   string // server URL, e.g. "http://localhost:8080"
	imagesDir string
}

const blobURLPrefix = "/api/v1/blobs/"

func NewLocalStorage(baseURL, uploadsDir string) (*LocalStorage, error) {
	imagesDir := filepath.Join(uploadsDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalStorage{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		imagesDir: imagesDir,
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	fullPath := filepath.Join(s.imagesDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return s.baseURL + blobURLPrefix + key, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.imagesDir, filepath.FromSlash(key))
	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (s *LocalStorage) KeyFromURL(url string) string {
	idx := strings.Index(url, blobURLPrefix)
	if idx < 0 {
		return ""
	}
	return url[idx+len(blobURLPrefix):]
}

func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.imagesDir, filepath.FromSlash(key)))
}
