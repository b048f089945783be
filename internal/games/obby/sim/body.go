package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-obby/internal/clip"
)

const (
	// EntityHalfExtent is a little under half a cell so actors slide past
	// tile seams without snagging.
	EntityHalfExtent float32 = 0.45
	// TileHalfExtent covers exactly one cell.
	TileHalfExtent float32 = 0.5
)

// BodyKind tells which variant a Body holds.
type BodyKind int

const (
	BodyEntity BodyKind = iota
	BodyTile
	BodyVoid
)

func (k BodyKind) String() string {
	switch k {
	case BodyEntity:
		return "entity"
	case BodyTile:
		return "tile"
	default:
		return "void"
	}
}

// Body is a collision candidate captured at enumeration time.
// Only the fields of its Kind are meaningful.
type Body struct {
	Kind BodyKind

	// BodyTile and BodyVoid
	Cell Cell
	Tile Tile

	// BodyEntity
	Entity     EntityID
	EntityKind Kind
	Pos        mgl32.Vec2
}

var _ clip.Body = Body{}

func (b Body) Center() mgl32.Vec2 {
	if b.Kind == BodyEntity {
		return b.Pos
	}
	return b.Cell.Center()
}

func (b Body) HalfExtent() float32 {
	if b.Kind == BodyEntity {
		return EntityHalfExtent
	}
	return TileHalfExtent
}
