package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FilesRoute is where the API serves stored objects, see FilesHandler.
const FilesRoute = "/files/"

// LocalStore keeps objects on disk. Its URLs are served by the API itself and
// do not expire, so SignedURL ignores the ttl.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore stores under dir and builds URLs from publicBaseURL.
func NewLocalStore(dir, publicBaseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Dir is the directory objects are written to.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Join(s.dir, UploadPrefix), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}

func (s *LocalStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("write object: %w", err)
	}
	return f.Close()
}

func (s *LocalStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if _, err := s.path(key); err != nil {
		return "", err
	}
	return ObjectURL(s.baseURL, key), nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)[1:]
	if clean == "" || clean != key {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.dir, filepath.FromSlash(clean)), nil
}
