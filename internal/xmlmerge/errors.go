package xmlmerge

import "fmt"

// MergeErrorType classifies merge failures.
type MergeErrorType int

const (
	// SourceMissing means the mod-side fragment file does not exist.
	SourceMissing MergeErrorType = iota
	// SourceMalformed means the mod-side fragment failed to parse.
	SourceMalformed
	// TargetMalformed means the mission file failed to parse. The file is
	// left exactly as it was found.
	TargetMalformed
	// TargetDirMissing means the mission directory for the target does
	// not exist, which points at a misconfigured mission path.
	TargetDirMissing
	// BackupFailed means the pre-merge backup copy could not be written.
	BackupFailed
	// LockFailed means the advisory lock on the target could not be taken.
	LockFailed
	// WriteFailed means the merged document could not be written back.
	WriteFailed
)

// MergeError is a categorized merge failure carrying the file it concerns.
type MergeError struct {
	Type    MergeErrorType
	Path    string
	Message string
	Cause   error
}

func (e *MergeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

func (e *MergeError) Unwrap() error {
	return e.Cause
}

// NewMergeError creates a MergeError.
func NewMergeError(errType MergeErrorType, path, message string, cause error) *MergeError {
	return &MergeError{
		Type:    errType,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// Recoverable reports whether a batch merge may continue past this error.
// Malformed inputs spoil one file pair; everything else points at the
// environment and aborts the run.
func Recoverable(err error) bool {
	me, ok := err.(*MergeError)
	if !ok {
		return false
	}
	switch me.Type {
	case SourceMissing, SourceMalformed, TargetMalformed:
		return true
	}
	return false
}
