package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ScreenshotStore persists payment screenshots and returns their public URL.
type ScreenshotStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// GCSScreenshotStore uploads screenshots to a Cloud Storage bucket.
type GCSScreenshotStore struct {
	client *storage.Client
	bucket string
}

func NewGCSScreenshotStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSScreenshotStore, error) {
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSScreenshotStore{client: client, bucket: bucket}, nil
}

func (s *GCSScreenshotStore) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key), nil
}

func (s *GCSScreenshotStore) Close() error {
	return s.client.Close()
}

// DiskScreenshotStore writes screenshots under a local directory served at
// baseURL.
type DiskScreenshotStore struct {
	dir     string
	baseURL string
}

func NewDiskScreenshotStore(dir, baseURL string) *DiskScreenshotStore {
	return &DiskScreenshotStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskScreenshotStore) Save(_ context.Context, key string, data []byte, _ string) (string, error) {
	clean := filepath.Clean("/" + key)
	path := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return s.baseURL + filepath.ToSlash(clean), nil
}
