package formats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates that no adapter is registered under the requested name.
type ErrUnknownFormat struct {
	Name  string
	Known []string // Registered names, for the error message
}

func (e *ErrUnknownFormat) Error() string {
	msg := fmt.Sprintf("unknown format %q", e.Name)
	if len(e.Known) > 0 {
		msg += " (available: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

// ErrFileNotFound indicates the specified file (or its parent directory) does not exist.
type ErrFileNotFound struct {
	Path string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("file not found: %q", e.Path)
}

// ErrMalformedInput indicates that the source file could not be tokenized or decoded.
type ErrMalformedInput struct {
	Format  string // Format adapter name
	Path    string // File path
	Details string // What was wrong
	Err     error  // Underlying error, if any
}

func (e *ErrMalformedInput) Error() string {
	msg := fmt.Sprintf("%s: malformed input %q", e.Format, e.Path)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrMalformedInput) Unwrap() error {
	return e.Err
}

// ErrOutputExists indicates the destination file is present and overwriting was not allowed.
type ErrOutputExists struct {
	Path string
}

func (e *ErrOutputExists) Error() string {
	return fmt.Sprintf("output file %q already exists", e.Path)
}

// ErrPermissionDenied indicates a file access permission issue.
type ErrPermissionDenied struct {
	Path string
	Op   string // Operation that failed (read, open, write, etc.)
	Err  error  // Underlying error
}

func (e *ErrPermissionDenied) Error() string {
	msg := fmt.Sprintf("permission denied: cannot %s %q", e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrPermissionDenied) Unwrap() error {
	return e.Err
}

// ErrAuthenticationFailed indicates that an encrypted source could not be unlocked.
type ErrAuthenticationFailed struct {
	Format string
	Path   string
	Reason string
	Err    error
}

func (e *ErrAuthenticationFailed) Error() string {
	msg := fmt.Sprintf("%s: authentication failed for %q", e.Format, e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrAuthenticationFailed) Unwrap() error {
	return e.Err
}

// ErrUnsupportedFeature indicates an operation the format does not offer,
// such as writing a read-only format.
type ErrUnsupportedFeature struct {
	Format  string
	Feature string
}

func (e *ErrUnsupportedFeature) Error() string {
	return fmt.Sprintf("%s: unsupported feature: %s", e.Format, e.Feature)
}

// IsUnknownFormat returns true if the error is an unknown format error.
func IsUnknownFormat(err error) bool {
	var target *ErrUnknownFormat
	return errors.As(err, &target)
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	var target *ErrFileNotFound
	return errors.As(err, &target)
}

// IsMalformedInput returns true if the error is a parse or decode error.
func IsMalformedInput(err error) bool {
	var target *ErrMalformedInput
	return errors.As(err, &target)
}

// IsOutputExists returns true if the write was refused because the destination exists.
func IsOutputExists(err error) bool {
	var target *ErrOutputExists
	return errors.As(err, &target)
}

// IsPermissionDenied returns true if the error is a permission error.
func IsPermissionDenied(err error) bool {
	var target *ErrPermissionDenied
	return errors.As(err, &target)
}

// IsAuthError returns true if the error is an authentication error.
func IsAuthError(err error) bool {
	var target *ErrAuthenticationFailed
	return errors.As(err, &target)
}

// IsUnsupported returns true if the error is an unsupported feature error.
func IsUnsupported(err error) bool {
	var target *ErrUnsupportedFeature
	return errors.As(err, &target)
}
