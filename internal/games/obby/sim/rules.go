package sim

// Rules holds the tunable constants of the simulation.
type Rules struct {
	Gravity     float32 // units/s²
	MoveSpeed   float32 // max horizontal speed, units/s
	JumpSpeed   float32 // initial upward speed of a jump
	DragSpeed   float32 // idle horizontal deceleration factor
	AccelFactor float32 // horizontal acceleration multiplier
	FallMargin  float32 // how far below the grid a player may fall before dying

	SpawnDelay     float32 // seconds
	DeathDelay     float32
	WinDelay       float32
	CloudStandSec  float32
	CloudHiddenSec float32

	PickupRadius float32
	StandRadius  float32

	StartLives    int
	InfiniteLives bool
	CoinScore     int
	LevelBonus    int
	CoinsPerLife  int
}

// DefaultRules returns the standard game constants.
func DefaultRules() Rules {
	return Rules{
		Gravity:     60,
		MoveSpeed:   8,
		JumpSpeed:   20,
		DragSpeed:   20,
		AccelFactor: 16,
		FallMargin:  1,

		SpawnDelay:     1,
		DeathDelay:     2,
		WinDelay:       2,
		CloudStandSec:  0.5,
		CloudHiddenSec: 1,

		PickupRadius: 1,
		StandRadius:  1,

		StartLives:   3,
		CoinScore:    100,
		LevelBonus:   1000,
		CoinsPerLife: 100,
	}
}
