package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalSink stores files in a local directory
type LocalSink struct {
	dir string
}

// NewLocalSink creates a local filesystem sink
func NewLocalSink(dir string) *LocalSink {
	return &LocalSink{dir: dir}
}

// Upload writes the file under the storage directory, creating it if needed
func (s *LocalSink) Upload(_ context.Context, data []byte, fileName, fileType string) (*UploadResult, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, objectName(fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return &UploadResult{
		Path: path,
		Size: int64(len(data)),
		Type: fileType,
	}, nil
}
