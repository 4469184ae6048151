package criteria

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded indicates a criteria tree deeper than the configured limit.
var ErrDepthExceeded = errors.New("criteria depth limit exceeded")

// DepthError reports the depth of a rejected criteria tree.
type DepthError struct {
	Depth    int
	MaxDepth int
}

// Error returns the error message.
func (e *DepthError) Error() string {
	return fmt.Sprintf("criteria depth %d exceeds limit %d", e.Depth, e.MaxDepth)
}

// Unwrap returns ErrDepthExceeded.
func (e *DepthError) Unwrap() error {
	return ErrDepthExceeded
}
