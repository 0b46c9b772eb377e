package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/dzmod/internal/mod"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if !cfg.BackupEnabled {
		t.Error("Backups should be enabled by default")
	}
	if cfg.BackupFolder != "backups" {
		t.Errorf("Expected BackupFolder=backups, got %s", cfg.BackupFolder)
	}
	if cfg.ActiveMission != DefaultMission {
		t.Errorf("Expected ActiveMission=%s, got %s", DefaultMission, cfg.ActiveMission)
	}
	if _, ok := cfg.Missions[DefaultMission]; !ok {
		t.Errorf("Default mission %s should be configured", DefaultMission)
	}
	if len(cfg.ModSearchPaths) != 1 || cfg.ModSearchPaths[0] != "mods" {
		t.Errorf("Expected ModSearchPaths=[mods], got %v", cfg.ModSearchPaths)
	}
	if !cfg.MergeRules.SkipVanillaDuplicates {
		t.Error("SkipVanillaDuplicates should be true by default")
	}
	if cfg.MergeRules.OverwriteExisting {
		t.Error("OverwriteExisting should be false by default")
	}
	if !cfg.MergeRules.PreserveComments {
		t.Error("PreserveComments should be true by default")
	}
}

func TestDefaultMissionTargets(t *testing.T) {
	targets := DefaultMissionTargets("dayzOffline.enoch")

	if targets.Types != filepath.Join("mpmissions", "dayzOffline.enoch", "db", "types.xml") {
		t.Errorf("Unexpected types target: %s", targets.Types)
	}
	if targets.Events != filepath.Join("mpmissions", "dayzOffline.enoch", "cfgeventspawns.xml") {
		t.Errorf("Unexpected events target: %s", targets.Events)
	}
	if targets.SpawnableTypes != filepath.Join("mpmissions", "dayzOffline.enoch", "cfgspawnabletypes.xml") {
		t.Errorf("Unexpected spawnabletypes target: %s", targets.SpawnableTypes)
	}
}

func TestMissionTargetsTarget(t *testing.T) {
	targets := MissionTargets{Types: "a.xml", Events: "b.xml", SpawnableTypes: "c.xml"}

	if targets.Target(mod.FragmentTypes) != "a.xml" {
		t.Error("Target(types) mismatch")
	}
	if targets.Target(mod.FragmentEvents) != "b.xml" {
		t.Error("Target(events) mismatch")
	}
	if targets.Target(mod.FragmentSpawnableTypes) != "c.xml" {
		t.Error("Target(spawnabletypes) mismatch")
	}
	if targets.Target(mod.FragmentKind("bogus")) != "" {
		t.Error("Unknown kind should map to empty target")
	}
}

func TestLoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, DefaultFileName)

		content := `{
  "backup_enabled": false,
  "active_mission": "dayzOffline.enoch",
  "missions": {
    "dayzOffline.enoch": {
      "types": "mpmissions/dayzOffline.enoch/db/types.xml"
    }
  }
}`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg, err := loader.Load(cfgPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.BackupEnabled {
			t.Error("Explicit backup_enabled=false should override the default")
		}
		if cfg.ActiveMission != "dayzOffline.enoch" {
			t.Errorf("Expected ActiveMission=dayzOffline.enoch, got %s", cfg.ActiveMission)
		}
		// Missing fields keep defaults.
		if cfg.BackupFolder != "backups" {
			t.Errorf("Expected default BackupFolder=backups, got %s", cfg.BackupFolder)
		}
		if !cfg.MergeRules.PreserveComments {
			t.Error("Missing merge_rules should keep defaults")
		}
	})

	t.Run("missions map replaces the default", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, DefaultFileName)

		// The operator removed the stock mission; it must stay removed.
		content := `{
  "active_mission": "dayzOffline.enoch",
  "missions": {
    "dayzOffline.enoch": {
      "types": "mpmissions/dayzOffline.enoch/db/types.xml"
    }
  }
}`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg, err := loader.Load(cfgPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if len(cfg.Missions) != 1 {
			t.Fatalf("Expected only the declared mission, got %v", cfg.MissionNames())
		}
		if _, ok := cfg.Mission(DefaultMission); ok {
			t.Errorf("Deleted stock mission %s resurrected from defaults", DefaultMission)
		}
		if _, ok := cfg.Mission("dayzOffline.enoch"); !ok {
			t.Error("Declared mission missing after load")
		}
	})

	t.Run("absent missions key keeps the default", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, DefaultFileName)

		if err := os.WriteFile(cfgPath, []byte(`{"backup_folder": "bak"}`), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg, err := loader.Load(cfgPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if _, ok := cfg.Mission(DefaultMission); !ok {
			t.Errorf("Expected default mission when the file omits missions, got %v", cfg.MissionNames())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/merge_config.json")
		if err == nil {
			t.Fatal("Expected error for missing file")
		}

		cfgErr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("Expected ConfigError, got %T", err)
		}
		if cfgErr.Type != ConfigNotFound {
			t.Errorf("Expected ConfigNotFound, got %v", cfgErr.Type)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, DefaultFileName)

		if err := os.WriteFile(cfgPath, []byte("{ invalid json }"), 0644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		_, err := loader.Load(cfgPath)
		if err == nil {
			t.Fatal("Expected error for invalid JSON")
		}

		cfgErr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("Expected ConfigError, got %T", err)
		}
		if cfgErr.Type != ConfigInvalid {
			t.Errorf("Expected ConfigInvalid, got %v", cfgErr.Type)
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadOrDefault("/nonexistent/merge_config.json")
	if err != nil {
		t.Fatalf("LoadOrDefault should not error on missing file: %v", err)
	}
	if cfg == nil || cfg.ActiveMission != DefaultMission {
		t.Errorf("Expected default config, got %+v", cfg)
	}
}

func TestLoadOrCreate(t *testing.T) {
	loader := NewLoader()

	t.Run("creates missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, DefaultFileName)

		cfg, err := loader.LoadOrCreate(cfgPath)
		if err != nil {
			t.Fatalf("LoadOrCreate failed: %v", err)
		}
		if cfg.ActiveMission != DefaultMission {
			t.Errorf("Expected default config, got %+v", cfg)
		}

		if _, err := os.Stat(cfgPath); err != nil {
			t.Errorf("Expected config file to be created: %v", err)
		}

		// A second call reads the file it wrote.
		again, err := loader.LoadOrCreate(cfgPath)
		if err != nil {
			t.Fatalf("Second LoadOrCreate failed: %v", err)
		}
		if again.ActiveMission != cfg.ActiveMission {
			t.Error("Reloaded config should match the created one")
		}
	})

	t.Run("does not mask invalid JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, DefaultFileName)

		if err := os.WriteFile(cfgPath, []byte("not json"), 0644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		if _, err := loader.LoadOrCreate(cfgPath); err == nil {
			t.Fatal("Expected error for invalid JSON")
		}
	})
}

func TestValidateConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := loader.Validate(cfg); err != nil {
			t.Errorf("Valid config should pass validation: %v", err)
		}
	})

	t.Run("backup enabled without folder", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BackupFolder = ""
		if err := loader.Validate(cfg); err == nil {
			t.Error("Expected validation error for empty backup folder")
		}
	})

	t.Run("no mod search paths", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ModSearchPaths = nil
		if err := loader.Validate(cfg); err == nil {
			t.Error("Expected validation error for empty mod search paths")
		}
	})

	t.Run("active mission not configured", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ActiveMission = "dayzOffline.nowhere"
		if err := loader.Validate(cfg); err == nil {
			t.Error("Expected validation error for unknown active mission")
		}
	})

	t.Run("mission without targets", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Missions["dayzOffline.empty"] = MissionTargets{}
		if err := loader.Validate(cfg); err == nil {
			t.Error("Expected validation error for mission with no targets")
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}

	got, err := ExpandPath("~/serverfiles")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "serverfiles") {
		t.Errorf("Expected %s, got %s", filepath.Join(home, "serverfiles"), got)
	}

	if got, _ := ExpandPath(""); got != "" {
		t.Errorf("Empty path should stay empty, got %s", got)
	}
}
