package file

import "context"

type FileRepository interface {
	Create(ctx context.Context, f ExportFile) (ExportFile, error)
	GetByID(ctx context.Context, id string) (ExportFile, error)
	List(ctx context.Context) ([]ExportFile, error)
	Delete(ctx context.Context, id string) error
}
