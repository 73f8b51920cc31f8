package storage

import (
	"context"
	"io"
)

// BlobStore durably stores an uploaded binary object and returns a URL the
// rest of the system treats as opaque. Implementations must not leave partial
// objects behind on error.
type BlobStore interface {
	Store(ctx context.Context, content io.Reader, originalFilename string) (string, error)
}
