package config

import "path/filepath"

// DefaultMission is the stock Chernarus mission shipped with the server.
const DefaultMission = "dayzOffline.chernarusplus"

// DefaultConfig returns the built-in configuration, matching a standard
// LinuxGSM layout with the server files in the working directory.
func DefaultConfig() *Config {
	return &Config{
		BackupEnabled: true,
		BackupFolder:  "backups",
		ActiveMission: DefaultMission,
		Missions: map[string]MissionTargets{
			DefaultMission: DefaultMissionTargets(DefaultMission),
		},
		ModSearchPaths: []string{"mods"},
		MergeRules: MergeRules{
			SkipVanillaDuplicates: true,
			OverwriteExisting:     false,
			PreserveComments:      true,
		},
	}
}

// DefaultMissionTargets returns the conventional target paths for a
// mission under mpmissions/. The economy files live in db/, the event
// spawns next to the mission init.
func DefaultMissionTargets(mission string) MissionTargets {
	base := filepath.Join("mpmissions", mission)
	return MissionTargets{
		Types:          filepath.Join(base, "db", "types.xml"),
		Events:         filepath.Join(base, "cfgeventspawns.xml"),
		SpawnableTypes: filepath.Join(base, "cfgspawnabletypes.xml"),
	}
}
