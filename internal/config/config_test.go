package config

import (
	"os"
	"path/filepath"
	"testing"

	"habitgrid/internal/constants"
)

func TestLoadCreatesDefaultsForMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GridStepMin != constants.GridStepMin {
		t.Errorf("GridStepMin = %d, want %d", cfg.GridStepMin, constants.GridStepMin)
	}
	if len(cfg.DefaultHabits) != len(constants.DefaultHabitNames) {
		t.Errorf("DefaultHabits = %v, want %v", cfg.DefaultHabits, constants.DefaultHabitNames)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := DefaultConfig()
	want.StoragePath = "/tmp/custom.db"
	want.GridStepMin = 30
	want.DefaultHabits = []string{"Stretch"}
	want.Debug = true
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.StoragePath != want.StoragePath {
		t.Errorf("StoragePath = %q, want %q", got.StoragePath, want.StoragePath)
	}
	if got.GridStepMin != want.GridStepMin {
		t.Errorf("GridStepMin = %d, want %d", got.GridStepMin, want.GridStepMin)
	}
	if len(got.DefaultHabits) != 1 || got.DefaultHabits[0] != "Stretch" {
		t.Errorf("DefaultHabits = %v, want [Stretch]", got.DefaultHabits)
	}
	if !got.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadMalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail on malformed config: %v", err)
	}
	if cfg.GridStepMin != constants.GridStepMin {
		t.Errorf("GridStepMin = %d, want default %d", cfg.GridStepMin, constants.GridStepMin)
	}
}

func TestLoadRepairsBadFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "storage_path: \"\"\ngrid_step_min: -3\ndefault_habits: []\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoragePath == "" {
		t.Error("empty StoragePath should be repaired")
	}
	if cfg.GridStepMin != constants.GridStepMin {
		t.Errorf("GridStepMin = %d, want repaired %d", cfg.GridStepMin, constants.GridStepMin)
	}
	if len(cfg.DefaultHabits) == 0 {
		t.Error("empty DefaultHabits should be repaired")
	}
}
