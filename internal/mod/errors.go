package mod

import "fmt"

// ScanErrorType represents the type of inventory scan error.
type ScanErrorType int

const (
	// ScanRootNotFound indicates the mods root directory does not exist.
	ScanRootNotFound ScanErrorType = iota
	// ScanRootUnreadable indicates the mods root directory cannot be read.
	ScanRootUnreadable
)

// ScanError represents a fatal inventory scan error. Failures inside a
// single mod directory are soft warnings, not ScanErrors.
type ScanError struct {
	// Type is the error type.
	Type ScanErrorType
	// Path is the path that failed.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("inventory scan failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("inventory scan failed for %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// NewScanError creates a new ScanError.
func NewScanError(typ ScanErrorType, path, message string, cause error) *ScanError {
	return &ScanError{
		Type:    typ,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
