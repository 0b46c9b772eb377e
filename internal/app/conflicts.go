package app

import (
	"context"

	"github.com/tacogips/dzmod/internal/config"
	"github.com/tacogips/dzmod/internal/conflict"
	"github.com/tacogips/dzmod/internal/loadorder"
)

// CheckConflictsOptions holds options for conflict detection.
type CheckConflictsOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// ServerDir is the server installation directory.
	ServerDir string
	// LoadOrderPath is the server config file carrying the load order.
	LoadOrderPath string
}

// CheckConflictsResult holds the results of conflict detection.
type CheckConflictsResult struct {
	// Report is the full conflict report.
	Report *conflict.Report
	// Warnings holds non-fatal scan problems.
	Warnings []string
}

// CheckConflicts scans the installed mods and reports filename collisions
// and duplicated load-order entries.
func CheckConflicts(ctx context.Context, opts CheckConflictsOptions) (*CheckConflictsResult, error) {
	inv, err := scanSearchPaths(opts.Config, opts.ServerDir)
	if err != nil {
		return nil, err
	}

	list, err := loadorder.NewStore(opts.LoadOrderPath).Load()
	if err != nil {
		return nil, NewLoadOrderError("failed to read load order", err)
	}

	return &CheckConflictsResult{
		Report:   conflict.Detect(inv, list),
		Warnings: inv.Warnings,
	}, nil
}
