package file

import "time"

// ExportFile is one uploaded attendance export. The raw text lives in blob
// storage; only metadata is kept in the database.
type ExportFile struct {
	ID          string
	Filename    string
	StoragePath string
	Size        int64
	UploadedAt  time.Time
}
