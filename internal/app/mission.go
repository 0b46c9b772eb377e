package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tacogips/dzmod/internal/config"
)

// missionsDirName is the server subdirectory holding mission folders.
const missionsDirName = "mpmissions"

// MissionOptions holds the shared options for mission operations.
type MissionOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// ConfigPath is where configuration changes are written back.
	ConfigPath string
	// ServerDir is the server installation directory.
	ServerDir string
}

// MissionInfo is one row of the mission listing.
type MissionInfo struct {
	// Name is the mission directory name.
	Name string
	// Active reports whether this is the configured active mission.
	Active bool
	// Configured reports whether merge targets are configured for it.
	Configured bool
	// OnDisk reports whether the mission directory exists.
	OnDisk bool
}

// ListMissionsResult holds the results of listing missions.
type ListMissionsResult struct {
	// Missions is the union of configured and on-disk missions, sorted.
	Missions []MissionInfo
}

// DetectMissions returns the mission directory names found on disk,
// sorted. A missing mpmissions directory yields an empty list.
func DetectMissions(serverDir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(serverDir, missionsDirName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewScanError("failed to read missions directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ConfigureDetectedMissions adds every on-disk mission missing from the
// configuration, with the conventional target paths, and persists the
// change. Returns the names that were added, sorted.
func ConfigureDetectedMissions(ctx context.Context, opts MissionOptions) ([]string, error) {
	onDisk, err := DetectMissions(opts.ServerDir)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, name := range onDisk {
		if _, ok := opts.Config.Mission(name); ok {
			continue
		}
		if opts.Config.Missions == nil {
			opts.Config.Missions = map[string]config.MissionTargets{}
		}
		opts.Config.Missions[name] = config.DefaultMissionTargets(name)
		added = append(added, name)
	}
	if len(added) == 0 {
		return nil, nil
	}

	if err := config.Save(opts.ConfigPath, opts.Config); err != nil {
		return nil, NewConfigLoadError("failed to save configuration", err)
	}
	return added, nil
}

// ListMissions lists every known mission: configured ones, on-disk ones,
// and which of them is active.
func ListMissions(ctx context.Context, opts MissionOptions) (*ListMissionsResult, error) {
	onDisk, err := DetectMissions(opts.ServerDir)
	if err != nil {
		return nil, err
	}
	onDiskSet := map[string]bool{}
	for _, name := range onDisk {
		onDiskSet[name] = true
	}

	seen := map[string]bool{}
	var names []string
	for _, name := range opts.Config.MissionNames() {
		names = append(names, name)
		seen[name] = true
	}
	for _, name := range onDisk {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	result := &ListMissionsResult{}
	for _, name := range names {
		_, configured := opts.Config.Mission(name)
		result.Missions = append(result.Missions, MissionInfo{
			Name:       name,
			Active:     name == opts.Config.ActiveMission,
			Configured: configured,
			OnDisk:     onDiskSet[name],
		})
	}
	return result, nil
}

// SwitchMission makes the named mission active and persists the change.
// A mission found on disk but not yet configured gets the conventional
// target paths added; a mission known nowhere is an error.
func SwitchMission(ctx context.Context, opts MissionOptions, name string) error {
	if _, ok := opts.Config.Mission(name); !ok {
		onDisk, err := DetectMissions(opts.ServerDir)
		if err != nil {
			return err
		}
		found := false
		for _, detected := range onDisk {
			if detected == name {
				found = true
				break
			}
		}
		if !found {
			return NewMissionNotFoundError(
				fmt.Sprintf("mission %s is neither configured nor under %s", name, missionsDirName), nil)
		}
		if opts.Config.Missions == nil {
			opts.Config.Missions = map[string]config.MissionTargets{}
		}
		opts.Config.Missions[name] = config.DefaultMissionTargets(name)
	}

	opts.Config.ActiveMission = name
	if err := config.Save(opts.ConfigPath, opts.Config); err != nil {
		return NewConfigLoadError("failed to save configuration", err)
	}
	return nil
}
