package sim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// Behavior is the state an entity is in. Each tick the entity's behavior
// steps it and returns the behavior for the next tick.
type Behavior int

const (
	Unknown Behavior = iota
	SpawningPlayer
	ActivePlayer
	DeadPlayer
	WonPlayer
	Pickup
	DecayingPlatform
	Goal
)

func (b Behavior) String() string {
	switch b {
	case SpawningPlayer:
		return "spawning_player"
	case ActivePlayer:
		return "active_player"
	case DeadPlayer:
		return "dead_player"
	case WonPlayer:
		return "won_player"
	case Pickup:
		return "pickup"
	case DecayingPlatform:
		return "decaying_platform"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// Gravity reports whether the behavior is subject to gravity.
func (b Behavior) Gravity() bool {
	return b == ActivePlayer
}

func (b Behavior) step(e *Entity, w *World, ctx Context) Behavior {
	switch b {
	case SpawningPlayer:
		return stepSpawning(e, w, ctx)
	case ActivePlayer:
		return stepActive(e, w, ctx)
	case DeadPlayer:
		return stepDead(e, w, ctx)
	case WonPlayer:
		return stepWon(e, w, ctx)
	case Pickup:
		return stepPickup(e, w)
	case DecayingPlatform:
		return stepCloud(e, w, ctx)
	default:
		return b
	}
}

func stepSpawning(e *Entity, w *World, ctx Context) Behavior {
	w.Paused = true
	w.CenterText = fmt.Sprintf("LEVEL %d", w.Level+1)
	if !e.Timer.Tick(ctx.DT()) {
		return SpawningPlayer
	}
	w.CenterText = ""
	w.Paused = false
	return ActivePlayer
}

func stepActive(e *Entity, w *World, ctx Context) Behavior {
	r := w.rules
	dt := ctx.DT()
	w.player = e.ID
	if e.Behavior.Gravity() {
		w.applyGravity(e, dt)
	}

	// OnFloor still holds the result of the previous vertical pass.
	if ctx.IsPressed(core.ActionJump) && e.OnFloor {
		e.Vel[1] = -r.JumpSpeed
		w.emit(core.Event{Kind: core.EventJump})
	}
	if !ctx.IsDown(core.ActionJump) && e.Vel.Y() < 0 {
		e.Vel[1] = 0
	}

	steer(e, ctx.DPad(), dt, r)

	dead, won := false, false
	w.applyVelocity(e, dt, e.Vel, func(b Body) {
		switch b.Kind {
		case BodyEntity:
			if b.EntityKind == KindGoal {
				won = true
			}
		case BodyTile:
			if b.Tile.Deadly {
				dead = true
			}
		}
	})

	if won {
		w.CenterText = "YOU WON!"
		e.Timer.Start(r.WinDelay)
		w.emit(core.Event{Kind: core.EventWon})
		w.Score += r.LevelBonus * (w.Level + 1)
		return WonPlayer
	}
	if e.Pos.Y() > float32(w.Grid.Height)+r.FallMargin {
		dead = true
	}
	if dead {
		w.CenterText = "YOU DIED!"
		e.Timer.Start(r.DeathDelay)
		w.emit(core.Event{Kind: core.EventDied})
		return DeadPlayer
	}
	return ActivePlayer
}

// steer accelerates toward the held direction, or drags to a stop when idle.
func steer(e *Entity, dpad mgl32.Vec2, dt float32, r Rules) {
	dx := dpad.X() * r.MoveSpeed * dt * r.AccelFactor
	vx := e.Vel.X()
	switch {
	case dpad.X() < 0:
		e.Facing = FacingLeft
		if vx > -r.MoveSpeed {
			vx += dx
		}
		vx = max(vx, -r.MoveSpeed)
	case dpad.X() > 0:
		e.Facing = FacingRight
		if vx < r.MoveSpeed {
			vx += dx
		}
		vx = min(vx, r.MoveSpeed)
	default:
		s := float32(math.Abs(float64(vx))) * dt * r.DragSpeed
		if vx > 0 {
			vx = max(vx-s, 0)
		} else if vx < 0 {
			vx = min(vx+s, 0)
		}
	}
	e.Vel[0] = vx
}

func stepDead(e *Entity, w *World, ctx Context) Behavior {
	w.Paused = true
	if !e.Timer.Tick(ctx.DT()) {
		return DeadPlayer
	}
	e.Deleted = true

	r := w.rules
	wholeGame := !r.InfiniteLives && w.LivesExtra <= 0
	over := core.Event{Kind: core.EventGameOver, Score: w.Score, Level: w.Level}
	w.restart(ctx, wholeGame)
	switch {
	case wholeGame:
		w.emit(over)
	case !r.InfiniteLives:
		w.LivesExtra--
	}
	return DeadPlayer
}

func stepWon(e *Entity, w *World, ctx Context) Behavior {
	w.Paused = true
	if e.Timer.Tick(ctx.DT()) {
		w.NextLevel(ctx)
	}
	return WonPlayer
}

func stepPickup(e *Entity, w *World) Behavior {
	if w.Paused {
		return Pickup
	}
	r := w.rules
	bob := float32(math.Sin(float64(w.Elapsed)*2*math.Pi)) / 8
	e.Pos[1] = e.Start.Y() + bob

	p, ok := w.Player()
	if !ok || p.Pos.Sub(e.Pos).Len() >= r.PickupRadius {
		return Pickup
	}
	e.Deleted = true
	w.emit(core.Event{Kind: core.EventPickupCoin})
	w.Score += r.CoinScore
	w.Coins++
	if r.CoinsPerLife > 0 && w.Coins >= r.CoinsPerLife {
		w.Coins = 0
		w.LivesExtra++
		w.emit(core.Event{Kind: core.EventPickupExtraLife})
	}
	return Pickup
}

// stepCloud hides the platform once the player has stood on it long enough
// and brings it back later. A cloud is hidden whenever it is off its start.
func stepCloud(e *Entity, w *World, ctx Context) Behavior {
	r := w.rules
	standing := false
	if p, ok := w.Player(); ok {
		standing = p.Pos.Sub(e.Pos).Len() < r.StandRadius && p.OnFloor
	}

	switch {
	case e.Pos != e.Start:
		if e.Timer.Tick(ctx.DT()) {
			e.Pos = e.Start
			e.Timer.Start(r.CloudStandSec)
		}
	case standing:
		if e.Timer.Tick(ctx.DT()) {
			e.Pos = mgl32.Vec2{-2, -2}
			e.Timer.Start(r.CloudHiddenSec)
		}
	default:
		e.Timer.Start(r.CloudStandSec)
	}
	return DecayingPlatform
}
