//go:build linux

package xmlmerge

import (
	"os"

	"golang.org/x/sys/unix"
)

// targetLock is an advisory flock guarding a merge target against a
// concurrent run mutating the same mission file.
type targetLock struct {
	file *os.File
}

// lockTarget takes an exclusive advisory lock on a sidecar lock file next
// to the target. The lock file is left behind after release; only the
// flock matters.
func lockTarget(targetPath string) (*targetLock, error) {
	f, err := os.OpenFile(targetPath+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}
	return &targetLock{file: f}, nil
}

func (l *targetLock) release() {
	if l == nil || l.file == nil {
		return
	}
	unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	l.file.Close()
	l.file = nil
}
