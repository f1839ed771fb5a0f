package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where raw attendance exports live. The engine only
// ever needs the bytes back; serving them over HTTP is not required.
type FileStorage interface {
	// Upload stores a file and returns the storage path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
