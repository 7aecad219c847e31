package employee

import "errors"

var (
	ErrNotFound      = errors.New("employee not found")
	ErrInvalidStatus = errors.New("invalid employee status")
)
