package config

import (
	_ "embed"
)

//go:embed defaults/desert.yaml
var defaultDesertYAML []byte

// DefaultDesertConfig returns the built-in configuration. It mirrors
// defaults/desert.yaml and is used when the embedded file cannot be parsed.
func DefaultDesertConfig() DesertConfig {
	return DesertConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Scroll: ScrollConfig{
			Speed:       2,
			MarkX:       400,
			MarkWidth:   10,
			MarkHeight:  40,
			MarkSpacing: 20,
		},
		Vehicle: VehicleConfig{
			StartX: 400,
			StartY: 460,
			Width:  120,
			Height: 72,
			MinX:   60,
			MaxX:   740,
			Step:   5,
		},
		Obstacles: EntityConfig{
			Width:       50,
			Height:      80,
			SpawnY:      -80,
			PeriodMs:    40,
			SpeedFactor: 2,
			Reward:      10,
		},
		Pickups: EntityConfig{
			Width:       30,
			Height:      30,
			SpawnY:      -30,
			PeriodMs:    20,
			SpeedFactor: 2,
			Reward:      50,
		},
		Dust: DustConfig{
			TrailEvery:   5,
			TrailOffsetY: 72,
			TrailMinSize: 10,
			TrailMaxSize: 20,
			TrailLife:    30,
			BurstCount:   20,
			BurstSpread:  30,
			BurstOffsetY: 36,
			BurstMinSize: 15,
			BurstMaxSize: 30,
			BurstLife:    40,
		},
		Crash: CrashConfig{
			FreezeDelayMs: 3000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDesertYAML
}
