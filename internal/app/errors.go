package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ScanFailed indicates the mod inventory scan failed.
	ScanFailed AppErrorType = iota
	// ConfigLoadFailed indicates configuration loading failed.
	ConfigLoadFailed
	// LoadOrderFailed indicates reading or writing the load order failed.
	LoadOrderFailed
	// MergeFailed indicates a merge run failed.
	MergeFailed
	// MissionNotFound indicates the named mission is not configured or on disk.
	MissionNotFound
	// ValidationFailed indicates validation failed.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewScanError creates an inventory scan error.
func NewScanError(message string, cause error) *AppError {
	return NewAppError(ScanFailed, message, cause)
}

// NewConfigLoadError creates a configuration load error.
func NewConfigLoadError(message string, cause error) *AppError {
	return NewAppError(ConfigLoadFailed, message, cause)
}

// NewLoadOrderError creates a load-order error.
func NewLoadOrderError(message string, cause error) *AppError {
	return NewAppError(LoadOrderFailed, message, cause)
}

// NewMergeError creates a merge error.
func NewMergeError(message string, cause error) *AppError {
	return NewAppError(MergeFailed, message, cause)
}

// NewMissionNotFoundError creates a mission lookup error.
func NewMissionNotFoundError(message string, cause error) *AppError {
	return NewAppError(MissionNotFound, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
