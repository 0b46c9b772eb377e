package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/dzmod/internal/mod"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// LoadOrCreate loads configuration, writing the default file first
	// when it does not exist yet.
	LoadOrCreate(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path. Fields absent
// from the file keep their default values; unmarshalling into a
// pre-populated Config handles boolean fields, which a post-hoc merge
// cannot tell apart from an explicit false.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	// The missions map in the file is authoritative: unmarshalling into
	// the pre-populated default map would merge the two and resurrect
	// missions the operator deleted. The defaults apply only when the
	// key is absent entirely.
	cfg := DefaultConfig()
	defaultMissions := cfg.Missions
	cfg.Missions = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}
	if cfg.Missions == nil {
		cfg.Missions = defaultMissions
	}
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadOrCreate loads configuration, writing the default file first when
// it does not exist, so a fresh server directory ends up with an editable
// merge_config.json after the first run.
func (l *FileLoader) LoadOrCreate(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err == nil {
		return cfg, nil
	}
	cfgErr, ok := err.(*ConfigError)
	if !ok || cfgErr.Type != ConfigNotFound {
		return nil, err
	}

	cfg = DefaultConfig()
	if err := Save(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.BackupEnabled && config.BackupFolder == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "backup_folder",
			"backup folder is required when backups are enabled")
	}
	if len(config.ModSearchPaths) == 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "mod_search_paths",
			"at least one mod search path is required")
	}
	if config.ActiveMission != "" {
		if _, ok := config.Missions[config.ActiveMission]; !ok {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "active_mission",
				fmt.Sprintf("mission %q is not configured under missions", config.ActiveMission))
		}
	}
	for name, targets := range config.Missions {
		hasTarget := false
		for _, kind := range mod.FragmentKinds() {
			if targets.Target(kind) != "" {
				hasTarget = true
				break
			}
		}
		if !hasTarget {
			return NewConfigErrorWithField(ConfigValidationFailed, "",
				fmt.Sprintf("missions.%s", name), "mission has no target files configured")
		}
	}
	return nil
}

// Save writes the configuration as indented JSON, creating the parent
// directory when needed.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path,
			fmt.Sprintf("failed to create directory %s", dir), err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to marshal configuration", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to write configuration file", err)
	}
	return nil
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return absPath, nil
}
