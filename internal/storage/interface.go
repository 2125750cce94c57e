package storage

import (
	"context"
	"io"
)

// BlobStorage is the object-storage collaborator behind item images.
// The local implementation keeps blobs on the filesystem and serves them
// over HTTP; a hosted bucket can be dropped in behind the same interface.
type BlobStorage interface {
	// Upload stores the blob under key and returns its public URL.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL recovers the storage key from a public URL previously
	// returned by Upload, for cascade cleanup. Returns "" when the URL does
	// not belong to this store.
	KeyFromURL(url string) string

	// Open reads a stored blob (used by the HTTP download handler).
	Open(key string) (io.ReadCloser, error)
}
