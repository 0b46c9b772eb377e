package xmlmerge

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const backupTimeFormat = "20060102_150405"

// backupFile copies the target into backupDir before any mutation, named
// <base>.<timestamp>.bak so repeated runs never clobber an earlier copy.
// Returns the backup path.
func backupFile(targetPath, backupDir string) (string, error) {
	data, err := os.ReadFile(targetPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s.%s.bak", filepath.Base(targetPath), time.Now().Format(backupTimeFormat))
	backupPath := filepath.Join(backupDir, name)
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", err
	}
	return backupPath, nil
}
