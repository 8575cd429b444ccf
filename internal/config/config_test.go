package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := ParseDesert(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseDesert(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDesertConfig()) {
		t.Errorf("embedded YAML and DefaultDesertConfig() disagree:\n%+v\n%+v", cfg, DefaultDesertConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadDesertWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDesert("")
	if err != nil {
		t.Fatalf("LoadDesert() failed: %v", err)
	}
	if cfg.Obstacles.PeriodMs != 40 || cfg.Pickups.PeriodMs != 20 {
		t.Errorf("unexpected spawn periods %d/%d", cfg.Obstacles.PeriodMs, cfg.Pickups.PeriodMs)
	}
}

func TestLoadDesertCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desert.yaml")
	data := []byte("scroll:\n  speed: 3\nvehicle:\n  step: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDesert(path)
	if err != nil {
		t.Fatalf("LoadDesert(%s) failed: %v", path, err)
	}
	if cfg.Scroll.Speed != 3 {
		t.Errorf("scroll.speed = %d, expected 3", cfg.Scroll.Speed)
	}
	if cfg.Vehicle.Step != 7 {
		t.Errorf("vehicle.step = %d, expected 7", cfg.Vehicle.Step)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Vehicle.MaxX != 740 {
		t.Errorf("vehicle.max_x = %d, expected default 740", cfg.Vehicle.MaxX)
	}
}

func TestLoadDesertMissingCustomPath(t *testing.T) {
	_, err := LoadDesert(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}

func TestLoadDesertUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "desert.yaml"), []byte("crash:\n  freeze_delay_ms: 1500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDesert("")
	if err != nil {
		t.Fatalf("LoadDesert() failed: %v", err)
	}
	if cfg.Crash.FreezeDelayMs != 1500 {
		t.Errorf("crash.freeze_delay_ms = %d, expected 1500", cfg.Crash.FreezeDelayMs)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("RUNNER_SCROLL_SPEED", "4")
	t.Setenv("RUNNER_OBSTACLE_PERIOD_MS", "500")
	t.Setenv("RUNNER_PICKUP_REWARD", "75")
	t.Setenv("RUNNER_CRASH_FREEZE_DELAY_MS", "100")

	cfg := DefaultDesertConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.Scroll.Speed != 4 {
		t.Errorf("scroll.speed = %d, expected 4", cfg.Scroll.Speed)
	}
	if cfg.Obstacles.PeriodMs != 500 {
		t.Errorf("obstacles.period_ms = %d, expected 500", cfg.Obstacles.PeriodMs)
	}
	if cfg.Pickups.PeriodMs != 20 {
		t.Errorf("pickups.period_ms = %d, expected untouched 20", cfg.Pickups.PeriodMs)
	}
	if cfg.Pickups.Reward != 75 {
		t.Errorf("pickups.reward = %d, expected 75", cfg.Pickups.Reward)
	}
	if cfg.Crash.FreezeDelayMs != 100 {
		t.Errorf("crash.freeze_delay_ms = %d, expected 100", cfg.Crash.FreezeDelayMs)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv("RUNNER_VEHICLE_STEP", "fast")

	cfg := DefaultDesertConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatal("expected a parse error for a non-numeric override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DesertConfig)
	}{
		{"zero scroll speed", func(c *DesertConfig) { c.Scroll.Speed = 0 }},
		{"inverted vehicle bounds", func(c *DesertConfig) { c.Vehicle.MinX, c.Vehicle.MaxX = 700, 100 }},
		{"start left of bounds", func(c *DesertConfig) { c.Vehicle.StartX = 10 }},
		{"start right of bounds", func(c *DesertConfig) { c.Vehicle.StartX = 790 }},
		{"zero obstacle period", func(c *DesertConfig) { c.Obstacles.PeriodMs = 0 }},
		{"pickup wider than world", func(c *DesertConfig) { c.Pickups.Width = 900 }},
		{"negative reward", func(c *DesertConfig) { c.Obstacles.Reward = -1 }},
		{"inverted burst sizes", func(c *DesertConfig) { c.Dust.BurstMinSize = 40 }},
		{"negative freeze delay", func(c *DesertConfig) { c.Crash.FreezeDelayMs = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDesertConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultDesertConfig()
	cfg.Scroll.Speed = 6

	data, err := MarshalDesert(cfg)
	if err != nil {
		t.Fatalf("MarshalDesert() failed: %v", err)
	}
	back, err := ParseDesert(data)
	if err != nil {
		t.Fatalf("ParseDesert() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("config changed through YAML:\n%+v\n%+v", back, cfg)
	}
}
