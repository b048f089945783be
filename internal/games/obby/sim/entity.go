package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// EntityID is a stable entity key, unique within one level load.
type EntityID uint32

// Kind identifies what an entity is, independent of its current behavior.
type Kind int

const (
	KindUnknown Kind = iota
	KindPlayer
	KindGoal
	KindCoin
	KindCloud
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGoal:
		return "goal"
	case KindCoin:
		return "coin"
	case KindCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction an entity looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Entity is a dynamic actor of the world.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Skin     int
	Pos      mgl32.Vec2
	Start    mgl32.Vec2
	Vel      mgl32.Vec2
	OnFloor  bool
	Facing   Facing
	Behavior Behavior
	Timer    Timer
	Collides bool
	Deleted  bool
}

// Cell returns the grid cell the entity's center is in.
func (e *Entity) Cell() Cell {
	x, y := core.Truncate(e.Pos)
	return Cell{X: x, Y: y}
}

// Body returns a value snapshot of the entity's collision box.
func (e *Entity) Body() Body {
	return Body{Kind: BodyEntity, Entity: e.ID, EntityKind: e.Kind, Pos: e.Pos}
}
