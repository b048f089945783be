// Package config provides YAML-based game configuration loading and
// difficulty presets for the obby platformer.
package config

// ObbyConfig contains all configuration for the obby game.
type ObbyConfig struct {
	Physics  ObbyPhysics  `yaml:"physics"`
	Timers   ObbyTimers   `yaml:"timers"`
	Gameplay ObbyGameplay `yaml:"gameplay"`
	Input    ObbyInput    `yaml:"input"`
	Theme    ObbyTheme    `yaml:"theme"`
}

// ObbyPhysics defines movement parameters in cells and seconds.
type ObbyPhysics struct {
	Gravity     float32 `yaml:"gravity"`      // cells/s²
	MoveSpeed   float32 `yaml:"move_speed"`   // max horizontal speed
	JumpSpeed   float32 `yaml:"jump_speed"`   // initial upward speed
	DragSpeed   float32 `yaml:"drag_speed"`   // idle deceleration factor
	AccelFactor float32 `yaml:"accel_factor"` // horizontal acceleration multiplier
	FallMargin  float32 `yaml:"fall_margin"`  // rows below the map before the player dies
	MaxDT       float32 `yaml:"max_dt"`       // longest step the simulation accepts
}

// ObbyTimers defines state durations in seconds.
type ObbyTimers struct {
	SpawnDelay  float32 `yaml:"spawn_delay"`
	DeathDelay  float32 `yaml:"death_delay"`
	WinDelay    float32 `yaml:"win_delay"`
	CloudStand  float32 `yaml:"cloud_stand"`
	CloudHidden float32 `yaml:"cloud_hidden"`
}

// ObbyGameplay defines scoring and lives.
type ObbyGameplay struct {
	Lives        int     `yaml:"lives"` // reserve lives at the start of a run
	CoinScore    int     `yaml:"coin_score"`
	LevelBonus   int     `yaml:"level_bonus"` // multiplied by the 1-based level number
	CoinsPerLife int     `yaml:"coins_per_life"`
	PickupRadius float32 `yaml:"pickup_radius"`
}

// ObbyInput tunes key-release emulation for terminals that only report
// key presses and auto-repeats.
type ObbyInput struct {
	HoldInitialMS int `yaml:"hold_initial_ms"` // first press counts as held this long
	HoldRepeatMS  int `yaml:"hold_repeat_ms"`  // each repeat extends the hold this long
}

// ObbyTheme names the colors used to draw the level.
type ObbyTheme struct {
	Block  string `yaml:"block"`
	Deadly string `yaml:"deadly"`
	Player string `yaml:"player"`
	Goal   string `yaml:"goal"`
	Coin   string `yaml:"coin"`
	Cloud  string `yaml:"cloud"`
	Text   string `yaml:"text"`
}
