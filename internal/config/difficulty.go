package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset.
// Unknown values yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p
	default:
		return ""
	}
}

// LivesForPreset returns the reserve lives a run starts with.
func LivesForPreset(preset DifficultyPreset, fallback int) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 1
	default:
		return fallback
	}
}

// ApplyObbyPreset modifies the config based on a difficulty preset.
func ApplyObbyPreset(cfg *ObbyConfig, preset DifficultyPreset) {
	cfg.Gameplay.Lives = LivesForPreset(preset, cfg.Gameplay.Lives)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.CoinsPerLife = 50
		cfg.Timers.CloudStand = 0.8
	case DifficultyHard:
		cfg.Gameplay.CoinsPerLife = 200
		cfg.Timers.CloudStand = 0.3
	}
}
