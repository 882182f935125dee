package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps blobs on the local filesystem under a base directory.
// The returned locator is the URL path the server serves the directory at.
type LocalStore struct {
	baseDir   string
	publicURL string
}

func NewLocalStore(baseDir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		baseDir:   baseDir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *LocalStore) Put(key string, data []byte) (string, error) {
	path := filepath.Join(s.baseDir, filepath.Clean("/"+key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

func (s *LocalStore) Delete(key string) error {
	path := filepath.Join(s.baseDir, filepath.Clean("/"+key))
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
