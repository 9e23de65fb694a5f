package storage

import "context"

// ObjectStorage captures the minimal S3-compatible operation the
// export archive needs.
type ObjectStorage interface {
	UploadObject(ctx context.Context, key string, contentType string, data []byte) error
}
