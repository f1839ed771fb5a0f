package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee id already registered")
	ErrCNICExists       = errors.New("cnic already registered")
)
