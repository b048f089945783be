package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-obby/internal/games/obby/sim"
)

// Tile traits understood in legends.
const (
	TraitBlock      = "block"
	TraitDeadly     = "deadly"
	TraitForeground = "foreground"
	TraitEntity     = "entity"
	TraitPlayer     = "player"
	TraitGoal       = "goal"
	TraitCoin       = "coin"
	TraitCloud      = "cloud"
)

// TileSpec describes what one legend character places.
type TileSpec struct {
	Traits  []string `yaml:"traits"`
	Variant int      `yaml:"variant,omitempty"`
}

// DefaultLegend maps the built-in level characters to tiles.
var DefaultLegend = map[rune]TileSpec{
	' ': {},
	'.': {},
	'#': {Traits: []string{TraitBlock}},
	'=': {Traits: []string{TraitBlock}, Variant: 1},
	'^': {Traits: []string{TraitBlock, TraitDeadly}},
	'%': {Traits: []string{TraitForeground}},
	'@': {Traits: []string{TraitEntity, TraitPlayer}},
	'G': {Traits: []string{TraitEntity, TraitGoal}},
	'$': {Traits: []string{TraitEntity, TraitCoin}},
	'~': {Traits: []string{TraitEntity, TraitCloud}},
}

// MapTile converts the spec to a simulation map tile.
// Entity traits imply the entity flag.
func (s TileSpec) MapTile() (sim.MapTile, error) {
	t := sim.MapTile{Variant: s.Variant}
	for _, trait := range s.Traits {
		switch trait {
		case TraitBlock:
			t.Solid = true
		case TraitDeadly:
			t.Deadly = true
		case TraitForeground:
			t.Foreground = true
		case TraitEntity:
			t.Entity = true
		case TraitPlayer:
			t.Player, t.Entity = true, true
		case TraitGoal:
			t.Goal, t.Entity = true, true
		case TraitCoin:
			t.Coin, t.Entity = true, true
		case TraitCloud:
			t.Cloud, t.Entity = true, true
		default:
			return sim.MapTile{}, fmt.Errorf("unknown trait %q", trait)
		}
	}
	return t, nil
}
