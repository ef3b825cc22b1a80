package storage

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"vox-market.backend/internal/config"
)

// UploadResult describes a stored file
type UploadResult struct {
	Path string
	Size int64
	Type string
}

// Sink stores uploaded document bytes and returns where they landed
type Sink interface {
	Upload(ctx context.Context, data []byte, fileName, fileType string) (*UploadResult, error)
}

// New selects a sink from configuration
func New(cfg config.StorageConfig) (Sink, error) {
	if cfg.Type == "s3" {
		return NewMinioSink(cfg)
	}
	return NewLocalSink(cfg.LocalPath), nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// objectName sanitizes a filename and prefixes it with a millisecond
// timestamp. Best-effort uniqueness, not collision-proof.
func objectName(fileName string) string {
	sanitized := unsafeFileChars.ReplaceAllString(fileName, "_")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitized)
}
