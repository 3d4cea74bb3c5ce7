package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.System != "qubit" {
		t.Errorf("System = %q, want qubit", cfg.System)
	}
	if cfg.Method != DefaultMethod {
		t.Errorf("Method = %q, want %q", cfg.Method, DefaultMethod)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("Dt = %g, want %g", cfg.Dt, DefaultDt)
	}
	if cfg.Duration != DefaultDuration {
		t.Errorf("Duration = %g, want %g", cfg.Duration, DefaultDuration)
	}
	if cfg.Points != DefaultPoints {
		t.Errorf("Points = %d, want %d", cfg.Points, DefaultPoints)
	}
	if cfg.Params.Omega != 1.0 {
		t.Errorf("Params.Omega = %g, want 1", cfg.Params.Omega)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.System = "cavity"
	cfg.Method = "slind"
	cfg.Dt = 0.0005
	cfg.Duration = 4.0
	cfg.Points = 250
	cfg.Params.Kappa = 1.5
	cfg.Params.Dim = 8
	cfg.InitState.Level = 3

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("system: driven\nmethod: ham_rk4\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.System != "driven" || cfg.Method != "ham_rk4" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Dt != DefaultDt || cfg.Points != DefaultPoints {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("qubit", "rabi")
	if cfg == nil {
		t.Fatal("qubit/rabi preset missing")
	}
	if cfg.Method != "ham" || cfg.Params.Omega != 1.0 {
		t.Errorf("unexpected qubit/rabi preset: %+v", cfg)
	}

	if GetPreset("qubit", "nope") != nil {
		t.Error("unknown preset should return nil")
	}
	if GetPreset("nope", "rabi") != nil {
		t.Error("unknown system should return nil")
	}
}

func TestPresetsWellFormed(t *testing.T) {
	methods := map[string]bool{
		"ham": true, "sham": true, "ham_rk4": true, "lind": true, "lind_rk4": true, "slind": true,
	}
	for system, presets := range Presets {
		for name, cfg := range presets {
			if cfg.System != system {
				t.Errorf("%s/%s: System = %q, want %q", system, name, cfg.System, system)
			}
			if !methods[cfg.Method] {
				t.Errorf("%s/%s: unknown method %q", system, name, cfg.Method)
			}
			if cfg.Dt <= 0 || cfg.Duration <= 0 || cfg.Points <= 0 {
				t.Errorf("%s/%s: non-positive timing %+v", system, name, cfg)
			}
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("qubit")
	if len(names) != len(Presets["qubit"]) {
		t.Errorf("ListPresets(qubit) = %v", names)
	}
	if ListPresets("nope") != nil {
		t.Error("unknown system should list nil")
	}
}
