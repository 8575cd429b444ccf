// Package config provides YAML-based configuration for the desert runner,
// with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
)

// DesertConfig contains every tunable of the simulation. Distances are in
// world pixels, speeds in pixels per frame, periods in simulated milliseconds.
type DesertConfig struct {
	World     WorldConfig   `yaml:"world"`
	Scroll    ScrollConfig  `yaml:"scroll" envPrefix:"RUNNER_SCROLL_"`
	Vehicle   VehicleConfig `yaml:"vehicle" envPrefix:"RUNNER_VEHICLE_"`
	Obstacles EntityConfig  `yaml:"obstacles" envPrefix:"RUNNER_OBSTACLE_"`
	Pickups   EntityConfig  `yaml:"pickups" envPrefix:"RUNNER_PICKUP_"`
	Dust      DustConfig    `yaml:"dust"`
	Crash     CrashConfig   `yaml:"crash" envPrefix:"RUNNER_CRASH_"`
}

// WorldConfig defines the visible play area.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScrollConfig defines background scrolling and the road-divider marks.
type ScrollConfig struct {
	Speed       int `yaml:"speed" env:"SPEED"`
	MarkX       int `yaml:"mark_x"`
	MarkWidth   int `yaml:"mark_width"`
	MarkHeight  int `yaml:"mark_height"`
	MarkSpacing int `yaml:"mark_spacing"`
}

// VehicleConfig defines the player vehicle.
type VehicleConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	MinX   int `yaml:"min_x"`
	MaxX   int `yaml:"max_x"`
	Step   int `yaml:"step" env:"STEP"` // Lateral pixels per frame while steering
}

// EntityConfig defines a kind of descending entity (obstacle or pickup).
type EntityConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpawnY      int `yaml:"spawn_y"`
	PeriodMs    int `yaml:"period_ms" env:"PERIOD_MS"`
	SpeedFactor int `yaml:"speed_factor"` // Multiple of the scroll speed
	Reward      int `yaml:"reward" env:"REWARD"`
}

// DustConfig defines the cosmetic particle trail and the crash burst.
type DustConfig struct {
	TrailEvery   int `yaml:"trail_every"` // Frames of steering per trail particle
	TrailOffsetY int `yaml:"trail_offset_y"`
	TrailMinSize int `yaml:"trail_min_size"`
	TrailMaxSize int `yaml:"trail_max_size"`
	TrailLife    int `yaml:"trail_life"`
	BurstCount   int `yaml:"burst_count"`
	BurstSpread  int `yaml:"burst_spread"`
	BurstOffsetY int `yaml:"burst_offset_y"`
	BurstMinSize int `yaml:"burst_min_size"`
	BurstMaxSize int `yaml:"burst_max_size"`
	BurstLife    int `yaml:"burst_life"`
}

// CrashConfig defines the termination sequence.
type CrashConfig struct {
	FreezeDelayMs int `yaml:"freeze_delay_ms" env:"FREEZE_DELAY_MS"`
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid desert config")

// Validate checks that every size, period and range is usable.
func (c DesertConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	ordered := func(name string, lo, hi int) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s range is inverted: %d > %d", name, lo, hi))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("scroll.speed", c.Scroll.Speed)
	positive("scroll.mark_height", c.Scroll.MarkHeight)
	if c.Scroll.MarkSpacing < 0 {
		errs = append(errs, fmt.Errorf("scroll.mark_spacing must not be negative, got %d", c.Scroll.MarkSpacing))
	}
	positive("vehicle.width", c.Vehicle.Width)
	positive("vehicle.height", c.Vehicle.Height)
	positive("vehicle.step", c.Vehicle.Step)
	ordered("vehicle.min_x/max_x", c.Vehicle.MinX, c.Vehicle.MaxX)
	if c.Vehicle.MinX <= c.Vehicle.MaxX && (c.Vehicle.StartX < c.Vehicle.MinX || c.Vehicle.StartX > c.Vehicle.MaxX) {
		errs = append(errs, fmt.Errorf("vehicle.start_x %d is outside [%d, %d]", c.Vehicle.StartX, c.Vehicle.MinX, c.Vehicle.MaxX))
	}

	for _, kind := range []struct {
		name string
		e    EntityConfig
	}{{"obstacles", c.Obstacles}, {"pickups", c.Pickups}} {
		name, e := kind.name, kind.e
		positive(name+".width", e.Width)
		positive(name+".height", e.Height)
		positive(name+".period_ms", e.PeriodMs)
		positive(name+".speed_factor", e.SpeedFactor)
		if e.Width > c.World.Width {
			errs = append(errs, fmt.Errorf("%s.width %d exceeds world width %d", name, e.Width, c.World.Width))
		}
		if e.Reward < 0 {
			errs = append(errs, fmt.Errorf("%s.reward must not be negative, got %d", name, e.Reward))
		}
	}

	positive("dust.trail_every", c.Dust.TrailEvery)
	positive("dust.trail_life", c.Dust.TrailLife)
	positive("dust.burst_life", c.Dust.BurstLife)
	ordered("dust.trail_min_size/trail_max_size", c.Dust.TrailMinSize, c.Dust.TrailMaxSize)
	ordered("dust.burst_min_size/burst_max_size", c.Dust.BurstMinSize, c.Dust.BurstMaxSize)
	if c.Dust.BurstCount < 0 || c.Dust.BurstSpread < 0 {
		errs = append(errs, errors.New("dust.burst_count and dust.burst_spread must not be negative"))
	}
	if c.Crash.FreezeDelayMs < 0 {
		errs = append(errs, fmt.Errorf("crash.freeze_delay_ms must not be negative, got %d", c.Crash.FreezeDelayMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
