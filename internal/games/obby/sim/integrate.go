package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-obby/internal/clip"
)

func (w *World) applyGravity(e *Entity, dt float32) {
	e.Vel[1] += w.rules.Gravity * dt
}

// applyVelocity moves e by vel*dt, vertical axis first, then horizontal.
// Both passes resolve against one candidate snapshot taken before moving.
// touch is called once for every pass that gets clipped.
func (w *World) applyVelocity(e *Entity, dt float32, vel mgl32.Vec2, touch func(Body)) {
	bodies := w.Bodies(e.Cell(), e.ID)

	velY := mgl32.Vec2{0, vel.Y()}
	velX := mgl32.Vec2{vel.X(), 0}

	e.OnFloor = false
	res := clip.Resolve(e.Body(), velY.Mul(dt), bodies)
	if res.Outcome == clip.Clipped {
		touch(res.Obstacle)
		e.OnFloor = res.Normal.Y() < 0
		e.Vel[1] = 0
	}
	e.Pos = res.Position

	res = clip.Resolve(e.Body(), velX.Mul(dt), bodies)
	if res.Outcome == clip.Clipped {
		touch(res.Obstacle)
	}
	e.Pos = res.Position
}
