package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/techmire/payroll-backend-go/internal/domain/file"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
)

type fileRepositoryImpl struct {
	db *database.DB
}

func NewFileRepository(db *database.DB) file.FileRepository {
	return &fileRepositoryImpl{db: db}
}

// Create implements file.FileRepository.
func (r *fileRepositoryImpl) Create(ctx context.Context, f file.ExportFile) (file.ExportFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO export_files (id, filename, storage_path, size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, filename, storage_path, size, uploaded_at
	`

	var created file.ExportFile
	err := q.QueryRow(ctx, query, f.ID, f.Filename, f.StoragePath, f.Size, f.UploadedAt).Scan(
		&created.ID,
		&created.Filename,
		&created.StoragePath,
		&created.Size,
		&created.UploadedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return file.ExportFile{}, file.ErrFilenameTaken
		}
		return file.ExportFile{}, err
	}

	return created, nil
}

// GetByID implements file.FileRepository.
func (r *fileRepositoryImpl) GetByID(ctx context.Context, id string) (file.ExportFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, filename, storage_path, size, uploaded_at
		FROM export_files
		WHERE id = $1
	`

	var f file.ExportFile
	err := q.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.Filename,
		&f.StoragePath,
		&f.Size,
		&f.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return file.ExportFile{}, file.ErrFileNotFound
		}
		return file.ExportFile{}, err
	}

	return f, nil
}

// List implements file.FileRepository.
func (r *fileRepositoryImpl) List(ctx context.Context) ([]file.ExportFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, filename, storage_path, size, uploaded_at
		FROM export_files
		ORDER BY uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []file.ExportFile
	for rows.Next() {
		var f file.ExportFile
		if err := rows.Scan(&f.ID, &f.Filename, &f.StoragePath, &f.Size, &f.UploadedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

// Delete implements file.FileRepository.
func (r *fileRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM export_files WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return file.ErrFileNotFound
	}

	return nil
}
