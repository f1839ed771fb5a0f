package file

import (
	"context"
	"io"
)

// FileService manages uploaded attendance exports and serves as the engine's
// raw-text provider.
type FileService interface {
	Upload(ctx context.Context, filename string, content io.Reader) (FileResponse, error)
	List(ctx context.Context) ([]FileResponse, error)

	// Content returns the raw export text for a stored file.
	Content(ctx context.Context, id string) (string, error)

	// Data returns the parsed export rows. A non-empty employeeID restricts
	// the result to that employee's section.
	Data(ctx context.Context, id string, employeeID string) (FileDataResponse, error)

	Delete(ctx context.Context, id string) error
}
