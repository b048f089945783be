package sim

import "github.com/go-gl/mathgl/mgl32"

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Center returns the world-space center of the cell.
func (c Cell) Center() mgl32.Vec2 {
	return mgl32.Vec2{float32(c.X) + 0.5, float32(c.Y) + 0.5}
}

// Tile is the static content of one grid cell.
type Tile struct {
	Variant    int
	Solid      bool
	Foreground bool
	Deadly     bool
}

// Grid stores the tiles of the current level, keyed by cell.
// Width and Height bound the play field; cells outside it have no tile.
type Grid struct {
	Width  int
	Height int
	tiles  map[Cell]Tile
}

// NewGrid creates an empty grid with the given bounds.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height, tiles: make(map[Cell]Tile)}
}

// Set stores a tile at c.
func (g *Grid) Set(c Cell, t Tile) {
	if g.tiles == nil {
		g.tiles = make(map[Cell]Tile)
	}
	g.tiles[c] = t
}

// Tile returns the tile at c and whether one exists.
func (g Grid) Tile(c Cell) (Tile, bool) {
	t, ok := g.tiles[c]
	return t, ok
}

// InColumns reports whether x lies within [0, Width).
func (g Grid) InColumns(x int) bool {
	return x >= 0 && x < g.Width
}
