package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techmire/payroll-backend-go/internal/domain/attendance"
	"github.com/techmire/payroll-backend-go/internal/domain/file"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
	"github.com/techmire/payroll-backend-go/internal/pkg/storage"
)

type FileServiceImpl struct {
	db                *database.DB
	fileRepo          file.FileRepository
	fileStorage       storage.FileStorage
	attendanceService attendance.AttendanceService
}

func NewFileService(
	db *database.DB,
	fileRepo file.FileRepository,
	fileStorage storage.FileStorage,
	attendanceService attendance.AttendanceService,
) file.FileService {
	return &FileServiceImpl{
		db:                db,
		fileRepo:          fileRepo,
		fileStorage:       fileStorage,
		attendanceService: attendanceService,
	}
}

// Upload implements file.FileService. The raw export goes to blob storage
// under a generated key; only metadata is persisted.
func (s *FileServiceImpl) Upload(ctx context.Context, filename string, content io.Reader) (file.FileResponse, error) {
	var buf bytes.Buffer
	size, err := io.Copy(&buf, content)
	if err != nil {
		return file.FileResponse{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if size == 0 {
		return file.FileResponse{}, file.ErrEmptyFile
	}

	id := uuid.New().String()
	key := fmt.Sprintf("exports/%s%s", id, filepath.Ext(filename))

	path, err := s.fileStorage.Upload(ctx, &buf, key)
	if err != nil {
		return file.FileResponse{}, fmt.Errorf("failed to store export: %w", err)
	}

	created, err := s.fileRepo.Create(ctx, file.ExportFile{
		ID:          id,
		Filename:    filename,
		StoragePath: path,
		Size:        size,
		UploadedAt:  time.Now(),
	})
	if err != nil {
		// Keep storage consistent with the metadata table.
		_ = s.fileStorage.Delete(ctx, path)
		return file.FileResponse{}, err
	}

	return file.ToResponse(created), nil
}

// List implements file.FileService.
func (s *FileServiceImpl) List(ctx context.Context) ([]file.FileResponse, error) {
	files, err := s.fileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]file.FileResponse, 0, len(files))
	for _, f := range files {
		result = append(result, file.ToResponse(f))
	}
	return result, nil
}

// Content implements file.FileService.
func (s *FileServiceImpl) Content(ctx context.Context, id string) (string, error) {
	f, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	rc, err := s.fileStorage.Download(ctx, f.StoragePath)
	if err != nil {
		return "", fmt.Errorf("failed to read export %s: %w", f.Filename, err)
	}
	defer rc.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, rc); err != nil {
		return "", fmt.Errorf("failed to read export %s: %w", f.Filename, err)
	}
	return sb.String(), nil
}

// Data implements file.FileService.
func (s *FileServiceImpl) Data(ctx context.Context, id string, employeeID string) (file.FileDataResponse, error) {
	f, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return file.FileDataResponse{}, err
	}

	raw, err := s.Content(ctx, id)
	if err != nil {
		return file.FileDataResponse{}, err
	}

	rows := s.attendanceService.ParseExport(raw)
	if employeeID != "" {
		rows = s.attendanceService.EmployeeSection(rows, employeeID).Rows
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells)
	}

	return file.FileDataResponse{
		ID:       f.ID,
		Filename: f.Filename,
		Rows:     cells,
	}, nil
}

// Delete implements file.FileService. The metadata row goes first so a
// storage failure cannot leave a dangling reference.
func (s *FileServiceImpl) Delete(ctx context.Context, id string) error {
	f, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.fileStorage.Delete(ctx, f.StoragePath)
}
