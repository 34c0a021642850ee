package emu

import (
	"errors"
	"fmt"
)

// ErrResolutionNotFound indicates the requested multimedia resolution is
// missing on the source side. Known data issue: the record is imported
// without the derivative and picked up again once the source data is fixed.
var ErrResolutionNotFound = errors.New("emu multimedia resolution not found")

// ServerError represents a non-2xx response from the EMu gateway
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("emu gateway error: HTTP %d", e.StatusCode)
}
