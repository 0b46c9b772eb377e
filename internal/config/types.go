package config

import (
	"sort"

	"github.com/tacogips/dzmod/internal/mod"
)

// DefaultFileName is the configuration file name looked up next to the
// server installation.
const DefaultFileName = "merge_config.json"

// Config is the tool configuration loaded from merge_config.json.
type Config struct {
	// BackupEnabled controls whether mission files are copied aside
	// before a merge touches them.
	BackupEnabled bool `json:"backup_enabled"`
	// BackupFolder is where backup copies are written.
	BackupFolder string `json:"backup_folder"`
	// ActiveMission names the mission whose files merges target.
	ActiveMission string `json:"active_mission"`
	// Missions maps mission names to their merge target files.
	Missions map[string]MissionTargets `json:"missions"`
	// ModSearchPaths lists the directories scanned for installed mods.
	ModSearchPaths []string `json:"mod_search_paths"`
	// MergeRules holds the merge policy.
	MergeRules MergeRules `json:"merge_rules"`
}

// MissionTargets holds the per-mission target file paths, one per
// fragment kind.
type MissionTargets struct {
	Types          string `json:"types"`
	Events         string `json:"events"`
	SpawnableTypes string `json:"spawnabletypes"`
}

// MergeRules is the merge policy section of the configuration.
type MergeRules struct {
	SkipVanillaDuplicates bool `json:"skip_vanilla_duplicates"`
	OverwriteExisting     bool `json:"overwrite_existing"`
	PreserveComments      bool `json:"preserve_comments"`
}

// Target returns the target path for a fragment kind, or "" when the
// mission has no target configured for it.
func (m MissionTargets) Target(kind mod.FragmentKind) string {
	switch kind {
	case mod.FragmentTypes:
		return m.Types
	case mod.FragmentEvents:
		return m.Events
	case mod.FragmentSpawnableTypes:
		return m.SpawnableTypes
	}
	return ""
}

// MissionNames returns the configured mission names sorted.
func (c *Config) MissionNames() []string {
	names := make([]string, 0, len(c.Missions))
	for name := range c.Missions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mission returns the targets for a mission name.
func (c *Config) Mission(name string) (MissionTargets, bool) {
	targets, ok := c.Missions[name]
	return targets, ok
}

// ActiveTargets returns the targets for the active mission.
func (c *Config) ActiveTargets() (MissionTargets, bool) {
	return c.Mission(c.ActiveMission)
}
