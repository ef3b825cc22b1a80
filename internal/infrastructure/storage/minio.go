package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"vox-market.backend/internal/config"
)

// MinioSink stores files in an S3-compatible bucket
type MinioSink struct {
	client *minio.Client
	bucket string
}

// NewMinioSink creates an object-store sink, creating the bucket when missing
func NewMinioSink(cfg config.StorageConfig) (*MinioSink, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.MinioEndpoint, err)
	}

	ctx := context.Background()
	if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
		exists, errBucketExists := client.BucketExists(ctx, cfg.MinioBucket)
		if errBucketExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", cfg.MinioBucket, err)
		}
	}

	return &MinioSink{client: client, bucket: cfg.MinioBucket}, nil
}

// Upload puts the file under vendor-documents/ in the configured bucket
func (s *MinioSink) Upload(ctx context.Context, data []byte, fileName, fileType string) (*UploadResult, error) {
	key := "vendor-documents/" + objectName(fileName)

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: fileType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %s to bucket %s: %w", key, s.bucket, err)
	}

	return &UploadResult{
		Path: key,
		Size: info.Size,
		Type: fileType,
	}, nil
}
