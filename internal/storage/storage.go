package storage

import (
	"context"
	"io"
)

// Uploader is the storage port for uploaded images. The implementation is
// chosen once at startup: GCS when a bucket is configured, local disk
// otherwise.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (publicURL string, err error)
}
