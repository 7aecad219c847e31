package orders

import "errors"

var (
	ErrNotFound       = errors.New("order not found")
	ErrUnknownTier    = errors.New("unknown service tier")
	ErrInvalidLoads   = errors.New("loads must be at least 1")
	ErrInvalidStatus  = errors.New("invalid work status")
	ErrInvalidPayment = errors.New("invalid payment type")
)
