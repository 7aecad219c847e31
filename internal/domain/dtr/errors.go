package dtr

import "errors"

var (
	ErrDuplicateEntry  = errors.New("a time log already exists for this employee and date")
	ErrInvalidInterval = errors.New("time out must be after time in")
	ErrInvalidClock    = errors.New("clock time must be in HH:MM format")
	ErrNotFound        = errors.New("time entry not found")
)
