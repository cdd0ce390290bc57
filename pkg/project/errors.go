package project

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrBadMagic = errors.New("not an animator project")
	ErrVersion  = errors.New("unsupported project version")
	ErrChecksum = errors.New("project checksum mismatch")
	ErrNoPath   = errors.New("project path is empty")
)

// Error provides structured error information for project file operations.
type Error struct {
	Op    string // Operation that failed ("save", "load", "decode")
	Path  string // File path, empty for stream operations
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("project %s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("project %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
