package app

import (
	"context"

	"github.com/tacogips/dzmod/internal/config"
	"github.com/tacogips/dzmod/internal/loadorder"
	"github.com/tacogips/dzmod/internal/mod"
)

// ListModsOptions holds options for listing installed mods.
type ListModsOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// ServerDir is the server installation directory.
	ServerDir string
	// LoadOrderPath is the server config file carrying the load order.
	LoadOrderPath string
}

// ModSummary is one row of the installed-mod listing.
type ModSummary struct {
	// Name is the canonical directory name, @ prefix included.
	Name string
	// DisplayName is the descriptor name, when the mod declares one.
	DisplayName string
	// ContentFiles is the number of packaged content archives.
	ContentFiles int
	// KeyFiles is the number of signing keys.
	KeyFiles int
	// Fragments lists the fragment kinds the mod ships.
	Fragments []mod.FragmentKind
	// Dependencies is the declared dependency list.
	Dependencies []string
	// Active reports whether the mod is in the load order.
	Active bool
}

// ListModsResult holds the results of listing installed mods.
type ListModsResult struct {
	// Mods holds one summary per installed mod, in scan order.
	Mods []ModSummary
	// Warnings holds non-fatal scan problems.
	Warnings []string
}

// ListMods scans the configured search paths and reports every installed
// mod together with its load-order status.
func ListMods(ctx context.Context, opts ListModsOptions) (*ListModsResult, error) {
	inv, err := scanSearchPaths(opts.Config, opts.ServerDir)
	if err != nil {
		return nil, err
	}

	list, err := loadorder.NewStore(opts.LoadOrderPath).Load()
	if err != nil {
		return nil, NewLoadOrderError("failed to read load order", err)
	}
	active := map[string]bool{}
	for _, name := range list.Names() {
		active[mod.NormalizeName(name)] = true
	}

	result := &ListModsResult{Warnings: inv.Warnings}
	for _, m := range inv.Mods {
		summary := ModSummary{
			Name:         m.Name,
			DisplayName:  m.DisplayName,
			ContentFiles: len(m.ContentFiles),
			KeyFiles:     len(m.KeyFiles),
			Dependencies: append([]string(nil), m.Dependencies...),
			Active:       active[mod.NormalizeName(m.Name)],
		}
		for _, kind := range mod.FragmentKinds() {
			if _, ok := m.Fragments[kind]; ok {
				summary.Fragments = append(summary.Fragments, kind)
			}
		}
		result.Mods = append(result.Mods, summary)
	}
	return result, nil
}
