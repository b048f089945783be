package clip

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// SeparationBias is how far a clipped mover is backed off along its
// displacement so the next tick starts separated from the obstacle.
const SeparationBias float32 = 0.005

// Body is anything with a square collision box.
type Body interface {
	Center() mgl32.Vec2
	HalfExtent() float32
}

// Box is a plain Body value.
type Box struct {
	Pos  mgl32.Vec2
	Half float32
}

func (b Box) Center() mgl32.Vec2  { return b.Pos }
func (b Box) HalfExtent() float32 { return b.Half }

// Outcome tells whether a move was stopped by an obstacle.
type Outcome int

const (
	Unhindered Outcome = iota
	Clipped
)

func (o Outcome) String() string {
	if o == Clipped {
		return "clipped"
	}
	return "unhindered"
}

// Result is the outcome of resolving one displacement.
// Obstacle and Normal are only set when Outcome is Clipped.
type Result[B Body] struct {
	Outcome  Outcome
	Position mgl32.Vec2
	Obstacle B
	// Normal is the obstacle's surface normal facing the mover.
	// Landing on a floor yields Normal.Y() < 0.
	Normal mgl32.Vec2
}

// Resolve moves mover by d and clips the move against candidates.
//
// Every candidate is swept from the mover's original center. The last
// candidate in slice order that is hit within the displacement determines
// the result, so callers must enumerate candidates in a stable order.
func Resolve[B Body](mover Body, d mgl32.Vec2, candidates []B) Result[B] {
	start := mover.Center()
	res := Result[B]{
		Outcome:  Unhindered,
		Position: start.Add(d),
	}

	dir := core.NormalizeOrZero(d)
	for _, c := range candidates {
		hit, ok := Sweep(start, d, mover.HalfExtent(), c.Center(), c.HalfExtent())
		if !ok || hit.TimeOfImpact > 1 {
			continue
		}
		res = Result[B]{
			Outcome:  Clipped,
			Position: start.Add(d.Mul(hit.TimeOfImpact)).Sub(dir.Mul(SeparationBias)),
			Obstacle: c,
			Normal:   hit.Normal.Mul(-1),
		}
	}
	return res
}
