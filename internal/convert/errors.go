package convert

import (
	"errors"
	"fmt"
)

// ErrNoHeaders indicates that the source file has no header row.
type ErrNoHeaders struct {
	Path string
}

func (e *ErrNoHeaders) Error() string {
	return fmt.Sprintf("no headers detected in %q: is it empty?", e.Path)
}

// IsNoHeaders returns true if the error is a missing header row error.
func IsNoHeaders(err error) bool {
	var target *ErrNoHeaders
	return errors.As(err, &target)
}
