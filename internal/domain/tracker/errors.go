package tracker

import "errors"

var (
	ErrNotFound      = errors.New("session not found")
	ErrTimerRunning  = errors.New("a timer is already running")
	ErrNoActiveTimer = errors.New("no timer is running")
	ErrInvalidSpan   = errors.New("session end must be after start")
	ErrInvalidRate   = errors.New("hourly rate must not be negative")
)
