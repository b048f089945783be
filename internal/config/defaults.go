package config

import (
	_ "embed"
)

//go:embed defaults/obby.yaml
var defaultObbyYAML []byte

// DefaultObbyConfig returns the default obby configuration.
func DefaultObbyConfig() ObbyConfig {
	return ObbyConfig{
		Physics: ObbyPhysics{
			Gravity:     60,
			MoveSpeed:   8,
			JumpSpeed:   20,
			DragSpeed:   20,
			AccelFactor: 16,
			FallMargin:  1,
			MaxDT:       0.1,
		},
		Timers: ObbyTimers{
			SpawnDelay:  1.0,
			DeathDelay:  2.0,
			WinDelay:    2.0,
			CloudStand:  0.5,
			CloudHidden: 1.0,
		},
		Gameplay: ObbyGameplay{
			Lives:        3,
			CoinScore:    100,
			LevelBonus:   1000,
			CoinsPerLife: 100,
			PickupRadius: 1.0,
		},
		Input: ObbyInput{
			HoldInitialMS: 600,
			HoldRepeatMS:  120,
		},
		Theme: ObbyTheme{
			Block:  "gray",
			Deadly: "bright_red",
			Player: "bright_yellow",
			Goal:   "bright_green",
			Coin:   "yellow",
			Cloud:  "bright_white",
			Text:   "bright_cyan",
		},
	}
}
