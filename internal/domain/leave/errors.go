package leave

import "errors"

var ErrInvalidType = errors.New("invalid leave type")
