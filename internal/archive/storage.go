// Package archive stores completed assessment results as JSON blobs for
// downstream analytics exports. The archive is an append-style mirror of
// what the database holds; losing a write degrades analytics, never the
// respondent's result.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for archived assessment results.
type StorageClient interface {
	PutResult(ctx context.Context, assessmentID string, data []byte) error
	GetResult(ctx context.Context, assessmentID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(assessmentID string) string {
	return filepath.Join(s.BaseDir, "assessments", assessmentID+".json")
}

// PutResult stores an assessment result blob.
func (s *LocalStorage) PutResult(ctx context.Context, assessmentID string, data []byte) error {
	path := s.path(assessmentID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// GetResult retrieves an archived assessment result blob.
func (s *LocalStorage) GetResult(ctx context.Context, assessmentID string) ([]byte, error) {
	return os.ReadFile(s.path(assessmentID))
}
