package app

import (
	"context"
	"sort"

	"github.com/tacogips/dzmod/internal/config"
	"github.com/tacogips/dzmod/internal/depcheck"
	"github.com/tacogips/dzmod/internal/loadorder"
)

// CheckDepsOptions holds options for dependency checking.
type CheckDepsOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// ServerDir is the server installation directory.
	ServerDir string
	// LoadOrderPath is the server config file carrying the load order.
	LoadOrderPath string
	// AgainstLoadOrder checks declared dependencies against the active
	// load order instead of everything installed on disk.
	AgainstLoadOrder bool
}

// CheckDepsResult holds the results of dependency checking.
type CheckDepsResult struct {
	// Reports maps each mod name to its dependency report.
	Reports map[string]depcheck.Report
	// ModNames is the report keys sorted, for stable presentation.
	ModNames []string
	// Satisfied reports whether no mod has a missing dependency.
	Satisfied bool
	// Warnings holds non-fatal scan problems.
	Warnings []string
}

// CheckDeps resolves every installed mod's declared dependencies.
func CheckDeps(ctx context.Context, opts CheckDepsOptions) (*CheckDepsResult, error) {
	inv, err := scanSearchPaths(opts.Config, opts.ServerDir)
	if err != nil {
		return nil, err
	}

	checkOpts := depcheck.Options{AgainstLoadOrder: opts.AgainstLoadOrder}
	if opts.AgainstLoadOrder {
		list, err := loadorder.NewStore(opts.LoadOrderPath).Load()
		if err != nil {
			return nil, NewLoadOrderError("failed to read load order", err)
		}
		checkOpts.LoadOrder = list
	}

	reports := depcheck.Check(inv, checkOpts)

	result := &CheckDepsResult{
		Reports:   reports,
		Satisfied: true,
		Warnings:  inv.Warnings,
	}
	for name, report := range reports {
		result.ModNames = append(result.ModNames, name)
		if len(report.Missing) > 0 {
			result.Satisfied = false
		}
	}
	sort.Strings(result.ModNames)
	return result, nil
}
