package app

import (
	"fmt"
	"path/filepath"

	"github.com/tacogips/dzmod/internal/config"
	"github.com/tacogips/dzmod/internal/mod"
)

// resolvePath resolves a configured path against the server directory.
// Absolute paths pass through unchanged.
func resolvePath(serverDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(serverDir, path)
}

// scanSearchPaths builds one combined inventory from every configured mod
// search path. A missing search path is a warning, not an error; when the
// same mod name appears under two roots the first one wins.
func scanSearchPaths(cfg *config.Config, serverDir string) (*mod.Inventory, error) {
	combined := &mod.Inventory{}
	seen := map[string]bool{}

	for _, searchPath := range cfg.ModSearchPaths {
		root := resolvePath(serverDir, searchPath)
		inv, err := mod.Scan(root)
		if err != nil {
			if scanErr, ok := err.(*mod.ScanError); ok && scanErr.Type == mod.ScanRootNotFound {
				combined.Warnings = append(combined.Warnings,
					fmt.Sprintf("mod search path not found: %s", root))
				continue
			}
			return nil, NewScanError(fmt.Sprintf("failed to scan %s", root), err)
		}

		combined.Warnings = append(combined.Warnings, inv.Warnings...)
		for _, m := range inv.Mods {
			key := mod.NormalizeName(m.Name)
			if seen[key] {
				combined.Warnings = append(combined.Warnings,
					fmt.Sprintf("duplicate mod %s under %s ignored", m.Name, root))
				continue
			}
			seen[key] = true
			combined.Mods = append(combined.Mods, m)
		}
	}
	return combined, nil
}
