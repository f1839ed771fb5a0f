package file

import "time"

type FileResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// FileDataResponse is the parsed export for display: the metadata header is
// already stripped and each row split into cells.
type FileDataResponse struct {
	ID       string     `json:"id"`
	Filename string     `json:"filename"`
	Rows     [][]string `json:"rows"`
}

func ToResponse(f ExportFile) FileResponse {
	return FileResponse{
		ID:         f.ID,
		Filename:   f.Filename,
		Size:       f.Size,
		UploadedAt: f.UploadedAt,
	}
}
