package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// MapTile describes what a level file places at one cell.
type MapTile struct {
	Player     bool
	Goal       bool
	Solid      bool
	Cloud      bool
	Foreground bool
	Entity     bool // cell holds an entity spawn, not a static tile
	Coin       bool
	Deadly     bool
	Variant    int
}

// Map is a loaded level.
type Map interface {
	Width() int
	Height() int
	Tile(x, y int) MapTile
	Background() core.Color
}

// MapStatus is the availability of a named level.
type MapStatus int

const (
	MapNotFound MapStatus = iota
	MapPending
	MapReady
)

func (s MapStatus) String() string {
	switch s {
	case MapPending:
		return "pending"
	case MapReady:
		return "ready"
	default:
		return "not_found"
	}
}

// MapSource resolves level names to maps.
type MapSource interface {
	Map(name string) (Map, MapStatus)
	MapList() []string
}

// Context is what a world needs from the outside for one tick.
type Context interface {
	MapSource
	DT() float32
	DPad() mgl32.Vec2
	IsDown(a core.Action) bool
	IsPressed(a core.Action) bool
}

// TickContext is the standard Context: a delta time, one input frame and a
// level source.
type TickContext struct {
	Delta  float32
	Input  core.InputFrame
	Levels MapSource
}

var _ Context = TickContext{}

func (c TickContext) DT() float32                  { return c.Delta }
func (c TickContext) DPad() mgl32.Vec2             { return c.Input.DPad() }
func (c TickContext) IsDown(a core.Action) bool    { return c.Input.IsDown(a) }
func (c TickContext) IsPressed(a core.Action) bool { return c.Input.Has(a) }

func (c TickContext) Map(name string) (Map, MapStatus) {
	if c.Levels == nil {
		return nil, MapNotFound
	}
	return c.Levels.Map(name)
}

func (c TickContext) MapList() []string {
	if c.Levels == nil {
		return nil
	}
	return c.Levels.MapList()
}
