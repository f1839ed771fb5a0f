package file

import "errors"

var (
	ErrFileNotFound  = errors.New("export file not found")
	ErrEmptyFile     = errors.New("export file is empty")
	ErrFilenameTaken = errors.New("a file with this name already exists")
)
