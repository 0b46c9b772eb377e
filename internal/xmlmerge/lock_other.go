//go:build !linux

package xmlmerge

// On platforms without flock the lock is a no-op. Merges are still atomic
// through the temp-file rename; only concurrent-run exclusion is lost.
type targetLock struct{}

func lockTarget(targetPath string) (*targetLock, error) {
	return &targetLock{}, nil
}

func (l *targetLock) release() {}
