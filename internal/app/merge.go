package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/tacogips/dzmod/internal/config"
	"github.com/tacogips/dzmod/internal/debug"
	"github.com/tacogips/dzmod/internal/mod"
	"github.com/tacogips/dzmod/internal/xmlmerge"
)

// MergeOptions holds options for a merge run.
type MergeOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// ServerDir is the server installation directory.
	ServerDir string
	// Mission is the target mission name. Empty means the active mission.
	Mission string
	// ModNames restricts the run to the named mods. Empty means every
	// installed mod.
	ModNames []string
	// Kinds restricts the run to the given fragment kinds. Empty means
	// every kind.
	Kinds []mod.FragmentKind
}

// FileMerge is the outcome of one source-into-target merge.
type FileMerge struct {
	// ModName is the mod the source fragment came from.
	ModName string
	// Kind is the fragment kind.
	Kind mod.FragmentKind
	// Source is the mod-side fragment path.
	Source string
	// Target is the mission file path.
	Target string
	// Added and Skipped are the entry counts, zero when Err is set.
	Added   int
	Skipped int
	// BackupPath is the backup taken before this merge, if any.
	BackupPath string
	// Err is the per-file failure, nil on success.
	Err error
}

// MergeResult holds the results of a merge run.
type MergeResult struct {
	// Mission is the mission that was merged into.
	Mission string
	// Merges holds one entry per attempted source-target pair, in run
	// order.
	Merges []FileMerge
	// Added and Skipped are the totals across successful merges.
	Added   int
	Skipped int
	// Failed counts merges that errored.
	Failed int
	// Warnings holds non-fatal scan problems.
	Warnings []string
}

// MergeAll merges the fragment files of the selected mods into the
// mission files. Mods fold in by canonical name order so two mods
// declaring the same entry resolve the same way on every run. A file
// pair that fails to parse is recorded and the run continues; anything
// pointing at a broken environment aborts.
func MergeAll(ctx context.Context, opts MergeOptions) (*MergeResult, error) {
	mission := opts.Mission
	if mission == "" {
		mission = opts.Config.ActiveMission
	}
	targets, ok := opts.Config.Mission(mission)
	if !ok {
		return nil, NewMissionNotFoundError(fmt.Sprintf("mission %s is not configured", mission), nil)
	}
	debug.DebugSection(fmt.Sprintf("merge into %s", mission))

	inv, err := scanSearchPaths(opts.Config, opts.ServerDir)
	if err != nil {
		return nil, err
	}

	mods, err := selectMods(inv, opts.ModNames)
	if err != nil {
		return nil, err
	}

	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = mod.FragmentKinds()
	}

	engine := xmlmerge.NewEngine(xmlmerge.Options{
		BackupEnabled: opts.Config.BackupEnabled,
		BackupDir:     resolvePath(opts.ServerDir, opts.Config.BackupFolder),
	})
	policy := xmlmerge.Policy{
		SkipVanillaDuplicates: opts.Config.MergeRules.SkipVanillaDuplicates,
		OverwriteExisting:     opts.Config.MergeRules.OverwriteExisting,
		PreserveComments:      opts.Config.MergeRules.PreserveComments,
	}

	result := &MergeResult{Mission: mission, Warnings: inv.Warnings}
	for _, m := range mods {
		for _, kind := range kinds {
			source, ok := m.Fragments[kind]
			if !ok {
				continue
			}
			target := targets.Target(kind)
			if target == "" {
				debug.Debug("[merge] mission %s has no %s target, skipping %s", mission, kind, m.Name)
				continue
			}
			target = resolvePath(opts.ServerDir, target)

			fm := FileMerge{ModName: m.Name, Kind: kind, Source: source, Target: target}
			res, err := engine.Merge(source, target, kind, policy)
			fm.BackupPath = res.BackupPath
			if err != nil {
				if !xmlmerge.Recoverable(err) {
					result.Merges = append(result.Merges, fm)
					return result, NewMergeError(
						fmt.Sprintf("merge of %s into %s aborted", source, target), err)
				}
				fm.Err = err
				result.Failed++
				result.Merges = append(result.Merges, fm)
				continue
			}
			fm.Added = res.Added
			fm.Skipped = res.Skipped
			result.Added += res.Added
			result.Skipped += res.Skipped
			result.Merges = append(result.Merges, fm)
		}
	}
	return result, nil
}

// selectMods resolves the requested mod names against the inventory, or
// returns every installed mod. Either way the result is ordered by
// canonical name so the fold order is stable.
func selectMods(inv *mod.Inventory, names []string) ([]mod.Mod, error) {
	var mods []mod.Mod
	if len(names) == 0 {
		mods = append(mods, inv.Mods...)
	} else {
		for _, name := range names {
			m := inv.ByName(name)
			if m == nil {
				return nil, NewValidationError(
					fmt.Sprintf("mod %s is not installed", mod.EnsurePrefix(name)), nil)
			}
			mods = append(mods, *m)
		}
	}
	sort.Slice(mods, func(i, j int) bool {
		return mod.NormalizeName(mods[i].Name) < mod.NormalizeName(mods[j].Name)
	})
	return mods, nil
}
