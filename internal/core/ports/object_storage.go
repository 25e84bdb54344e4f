package ports

import "context"

// ObjectStorage stores image objects under keys. Failures are reported as
// errs.StorageError.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// ImageBlob is an image submitted by a client, not yet uploaded.
type ImageBlob struct {
	Filename    string
	ContentType string
	Data        []byte
}
