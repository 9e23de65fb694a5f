package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/andresuchdata/smart-reorder/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient implements ObjectStorage against any S3-compatible
// service.
type MinioClient struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinioClient builds a client from the archive config.
func NewMinioClient(cfg config.ArchiveConfig) (*MinioClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("archive endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &MinioClient{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// UploadObject stores data under prefix/key in the configured bucket.
func (c *MinioClient) UploadObject(ctx context.Context, key string, contentType string, data []byte) error {
	objectKey := key
	if c.prefix != "" {
		objectKey = path.Join(c.prefix, key)
	}

	_, err := c.client.PutObject(ctx, c.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}

	return nil
}
