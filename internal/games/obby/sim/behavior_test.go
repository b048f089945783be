package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-obby/internal/core"
)

var flatLevel = rowMap{
	"          ",
	"          ",
	" @      G ",
	"##########",
}

func eventKinds(events []core.Event) []core.EventKind {
	kinds := make([]core.EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestSpawningPlayerIsFrozen(t *testing.T) {
	h := newHarness(t, DefaultRules(), flatLevel)
	h.tick(noInput())
	p := h.player()
	start := p.Pos

	n := h.until(120, holding(core.ActionRight), func() bool { return p.Behavior == ActivePlayer })
	assert.InDelta(t, 60, n, 2, "spawn delay is one second")
	assert.Equal(t, start, p.Pos, "input is ignored while spawning")
	assert.False(t, h.w.Paused)
	assert.Empty(t, h.w.CenterText)
}

func TestActivePlayerRestsOnFloor(t *testing.T) {
	h := newHarness(t, DefaultRules(), flatLevel)
	p := h.spawned()

	assert.True(t, p.OnFloor)
	assert.InDelta(t, 3-0.45-0.005, p.Pos.Y(), 1e-3)
	assert.Equal(t, ActivePlayer, p.Behavior)
}

func TestJumpNeedsFloorAndRisingEdge(t *testing.T) {
	h := newHarness(t, DefaultRules(), flatLevel)
	p := h.spawned()
	h.w.DrainEvents()

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	h.tick(jump)
	assert.Equal(t, float32(-20), p.Vel.Y())
	assert.False(t, p.OnFloor)
	assert.Equal(t, []core.EventKind{core.EventJump}, eventKinds(h.w.DrainEvents()))

	// A second press in mid air does nothing.
	h.tick(holding(core.ActionJump)())
	h.tick(jump)
	assert.Empty(t, h.w.DrainEvents())

	// Holding without a new press never jumps again after landing.
	h.until(120, holding(core.ActionJump), func() bool { return p.OnFloor })
	h.tick(holding(core.ActionJump)())
	assert.Empty(t, h.w.DrainEvents())
}

func TestReleasingJumpCutsAscent(t *testing.T) {
	h := newHarness(t, DefaultRules(), flatLevel)
	p := h.spawned()

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	h.tick(jump)
	require.Less(t, p.Vel.Y(), float32(0))

	h.tick(noInput())
	assert.Zero(t, p.Vel.Y())
}

func TestSteer(t *testing.T) {
	r := DefaultRules()

	e := &Entity{}
	steer(e, mgl32.Vec2{1, 0}, dt, r)
	assert.InDelta(t, 8*dt*16, e.Vel.X(), 1e-5)
	assert.Equal(t, FacingRight, e.Facing)

	for i := 0; i < 10; i++ {
		steer(e, mgl32.Vec2{1, 0}, dt, r)
	}
	assert.Equal(t, r.MoveSpeed, e.Vel.X(), "speed is capped")

	steer(e, mgl32.Vec2{}, dt, r)
	assert.InDelta(t, 8-8*dt*20, e.Vel.X(), 1e-4)
	for i := 0; i < 500; i++ {
		steer(e, mgl32.Vec2{}, 0.5, r)
		require.GreaterOrEqual(t, e.Vel.X(), float32(0), "drag never overshoots")
	}
	assert.Zero(t, e.Vel.X())

	steer(e, mgl32.Vec2{-1, 0}, dt, r)
	assert.Less(t, e.Vel.X(), float32(0))
	assert.Equal(t, FacingLeft, e.Facing)
	e.Vel[0] = -3
	steer(e, mgl32.Vec2{}, 1, r)
	assert.Zero(t, e.Vel.X())
}

func TestReachingGoalWinsAndAdvances(t *testing.T) {
	second := rowMap{
		"     ",
		" @ G ",
		"#####",
	}
	h := newHarness(t, DefaultRules(), flatLevel, second)
	p := h.spawned()
	h.w.DrainEvents()

	h.until(300, holding(core.ActionRight), func() bool { return p.Behavior == WonPlayer })
	assert.Equal(t, "YOU WON!", h.w.CenterText)
	assert.Equal(t, 1000, h.w.Score)
	assert.Equal(t, []core.EventKind{core.EventWon}, eventKinds(h.w.DrainEvents()))

	h.until(200, noInput, func() bool { return h.w.MapNext == "b" })
	assert.Equal(t, 1, h.w.Level)
	assert.True(t, h.w.Paused)

	load := h.tick(noInput())
	assert.Equal(t, MapLoad{Name: "b", Status: MapReady}, load)
	assert.Equal(t, 5, h.w.Grid.Width)
	assert.Equal(t, "LEVEL 2", h.w.CenterText)
	assert.Equal(t, 1000, h.w.Score, "score survives level changes")
}

func TestWinningLastLevelEndsRun(t *testing.T) {
	h := newHarness(t, DefaultRules(), flatLevel)
	p := h.spawned()

	h.until(300, holding(core.ActionRight), func() bool { return p.Behavior == WonPlayer })
	h.until(200, noInput, func() bool { return len(h.w.Events) > 1 })

	events := h.w.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, core.Event{Kind: core.EventGameOver, Score: 1000}, events[1])
}

var deadlyLevel = rowMap{
	"      ",
	" @  $ ",
	"      ",
	"^^^^^^",
}

func TestDeadlyTileKillsAndRespawns(t *testing.T) {
	h := newHarness(t, DefaultRules(), deadlyLevel)
	h.tick(noInput())
	p := h.player()

	h.until(300, noInput, func() bool { return p.Behavior == DeadPlayer })
	assert.Equal(t, "YOU DIED!", h.w.CenterText)
	assert.Contains(t, eventKinds(h.w.DrainEvents()), core.EventDied)

	gen := h.w.generation
	h.until(200, noInput, func() bool { return h.w.generation != gen })
	assert.Equal(t, 2, h.w.LivesExtra)
	assert.Len(t, h.w.Entities(), 2, "level is rebuilt with fresh entities")

	fresh := h.player()
	assert.NotSame(t, p, fresh)
	assert.Equal(t, SpawningPlayer, fresh.Behavior)
}

func TestFallingOutOfGridKills(t *testing.T) {
	h := newHarness(t, DefaultRules(), rowMap{
		"    ",
		" @  ",
		"    ",
	})
	h.tick(noInput())
	p := h.player()

	h.until(300, noInput, func() bool { return p.Behavior == DeadPlayer })
	assert.Greater(t, p.Pos.Y(), float32(3+1))
}

func TestNoReserveLivesRestartsRun(t *testing.T) {
	rules := DefaultRules()
	rules.StartLives = 0
	h := newHarness(t, rules, deadlyLevel)
	h.tick(noInput())
	h.w.Score = 300
	h.w.Level = 1

	gen := h.w.generation
	h.until(600, noInput, func() bool { return h.w.generation != gen })

	events := h.w.DrainEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, core.Event{Kind: core.EventGameOver, Score: 300, Level: 1}, events[len(events)-1],
		"the event carries the level reached before the run rewinds")
	assert.Zero(t, h.w.Score)
	assert.Zero(t, h.w.Level)
	assert.Equal(t, "a", h.w.MapNext)
	assert.Empty(t, h.w.Entities())
	assert.Nil(t, h.w.Map())

	assert.Equal(t, MapReady, h.tick(noInput()).Status)
	assert.Len(t, h.w.Entities(), 2)
}

func TestInfiniteLivesNeverEndRun(t *testing.T) {
	rules := DefaultRules()
	rules.StartLives = 0
	rules.InfiniteLives = true
	h := newHarness(t, rules, deadlyLevel)
	h.tick(noInput())

	for i := 0; i < 3; i++ {
		gen := h.w.generation
		h.until(600, noInput, func() bool { return h.w.generation != gen })
	}
	assert.Zero(t, h.w.LivesExtra)
	assert.NotContains(t, eventKinds(h.w.DrainEvents()), core.EventGameOver)
	assert.Len(t, h.w.Entities(), 2)
}

func TestCoinPickup(t *testing.T) {
	rules := DefaultRules()
	rules.CoinsPerLife = 2
	h := newHarness(t, rules, rowMap{
		"        ",
		" @ $ $  ",
		"########",
	})
	p := h.spawned()
	h.w.DrainEvents()
	assert.Len(t, h.w.Entities(), 3)

	h.until(300, holding(core.ActionRight), func() bool { return len(h.w.Entities()) == 1 })
	assert.Equal(t, ActivePlayer, p.Behavior)
	assert.Equal(t, 200, h.w.Score)
	assert.Zero(t, h.w.Coins)
	assert.Equal(t, 4, h.w.LivesExtra)
	assert.Equal(t,
		[]core.EventKind{core.EventPickupCoin, core.EventPickupCoin, core.EventPickupExtraLife},
		eventKinds(h.w.DrainEvents()))
}

func TestCoinBobsOnlyWhileRunning(t *testing.T) {
	w := NewWorld(DefaultRules())
	w.Grid = NewGrid(4, 4)
	coin := w.SpawnCoin(mgl32.Vec2{1.5, 1.5})

	w.Paused = true
	w.Elapsed = 0.25
	stepPickup(coin, w)
	assert.Equal(t, float32(1.5), coin.Pos.Y())

	w.Paused = false
	stepPickup(coin, w)
	assert.InDelta(t, 1.5+1.0/8, coin.Pos.Y(), 1e-5)
	assert.False(t, coin.Deleted, "no player, no pickup")
}

func TestCloudVanishesAndReturns(t *testing.T) {
	h := newHarness(t, DefaultRules(), rowMap{
		"       ",
		"  @    ",
		"  ~    ",
		"       ",
	})
	h.tick(noInput())
	var cloud *Entity
	for _, e := range h.w.Entities() {
		if e.Kind == KindCloud {
			cloud = e
		}
	}
	require.NotNil(t, cloud)
	p := h.player()

	h.until(120, noInput, func() bool { return p.Behavior == ActivePlayer && p.OnFloor })
	stood := h.until(120, noInput, func() bool { return cloud.Pos != cloud.Start })
	assert.InDelta(t, 30, stood, 3, "player stands for half a second")
	assert.Equal(t, mgl32.Vec2{-2, -2}, cloud.Pos)

	hidden := h.until(120, noInput, func() bool { return cloud.Pos == cloud.Start })
	assert.InDelta(t, 60, hidden, 3, "cloud stays hidden for one second")
}

func TestCloudWaitsWhileNobodyStands(t *testing.T) {
	w := NewWorld(DefaultRules())
	w.Grid = NewGrid(4, 4)
	cloud := w.SpawnCloud(mgl32.Vec2{1.5, 1.5})
	ctx := TickContext{Delta: 10}

	for i := 0; i < 5; i++ {
		stepCloud(cloud, w, ctx)
	}
	assert.Equal(t, cloud.Start, cloud.Pos)
	assert.InDelta(t, 0.5, cloud.Timer.Sec, 1e-6)
}

func TestBehaviorGravity(t *testing.T) {
	for _, b := range []Behavior{Unknown, SpawningPlayer, DeadPlayer, WonPlayer, Pickup, DecayingPlatform, Goal} {
		assert.False(t, b.Gravity(), b.String())
	}
	assert.True(t, ActivePlayer.Gravity())
}
