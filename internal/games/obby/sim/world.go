// Package sim is the obby world: a tile grid, the actors moving on it and the
// per-tick integration that resolves their movement against each other.
package sim

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// MapLoad reports what happened to a pending level request during a tick.
// Name is empty when no level was requested.
type MapLoad struct {
	Name   string
	Status MapStatus
}

// World owns the grid and the entity table of the running game.
type World struct {
	Grid Grid

	Score      int
	Level      int
	LivesExtra int
	Coins      int
	Skin       int
	Elapsed    float32 // seconds of unpaused play
	Paused     bool
	CenterText string
	MapNext    string

	Events []core.Event

	rules      Rules
	mapCurrent Map
	entities   map[EntityID]*Entity
	nextID     EntityID
	player     EntityID
	generation int
}

// NewWorld creates an empty world that plays by rules.
func NewWorld(rules Rules) *World {
	return &World{
		rules:    rules,
		entities: make(map[EntityID]*Entity),
	}
}

// Rules returns the rules the world plays by.
func (w *World) Rules() Rules {
	return w.rules
}

// Init prepares a new run starting at the first listed level.
func (w *World) Init(ctx MapSource) {
	w.LivesExtra = w.rules.StartLives
	w.MapNext = firstMap(ctx)
}

// Map returns the currently loaded level, or nil.
func (w *World) Map() Map {
	return w.mapCurrent
}

// Tick advances the world by one step.
//
// A requested level is loaded first; while it is pending nothing else
// happens. Entities are then stepped in ascending id order, each one seeing
// the already updated positions of those before it. A restart triggered by an
// entity ends the loop for this tick.
func (w *World) Tick(ctx Context) MapLoad {
	var load MapLoad
	if w.MapNext != "" {
		m, status := ctx.Map(w.MapNext)
		load = MapLoad{Name: w.MapNext, Status: status}
		switch status {
		case MapPending:
			return load
		case MapNotFound:
			w.MapNext = ""
		case MapReady:
			w.mapCurrent = m
			w.MapNext = ""
			w.restart(ctx, false)
		}
	}

	gen := w.generation
	for _, id := range w.ids() {
		e, ok := w.entities[id]
		if !ok {
			continue
		}
		next := e.Behavior.step(e, w, ctx)
		if w.generation != gen {
			break
		}
		e.Behavior = next
		if e.Deleted {
			delete(w.entities, id)
		}
	}

	if !w.Paused {
		w.Elapsed += ctx.DT()
	}
	return load
}

// NextLevel requests the level after the current one, or ends the run when
// there is none.
func (w *World) NextLevel(ctx MapSource) {
	list := ctx.MapList()
	next := w.Level + 1
	if next < len(list) {
		w.Level = next
		w.MapNext = list[next]
		return
	}
	w.emit(core.Event{Kind: core.EventGameOver, Score: w.Score, Level: w.Level})
}

// Restart reloads the current level, or the whole run when wholeGame is set.
func (w *World) Restart(ctx MapSource, wholeGame bool) {
	w.restart(ctx, wholeGame)
}

func (w *World) restart(ctx MapSource, wholeGame bool) {
	if wholeGame {
		w.Score = 0
		w.Level = 0
		w.Coins = 0
		w.Elapsed = 0
		w.LivesExtra = w.rules.StartLives
		w.mapCurrent = nil
		w.MapNext = firstMap(ctx)
	} else {
		w.MapNext = ""
	}

	w.Grid = Grid{}
	w.entities = make(map[EntityID]*Entity)
	w.nextID = 0
	w.player = 0
	w.Paused = false
	w.CenterText = ""
	w.generation++

	m := w.mapCurrent
	if m == nil {
		return
	}
	w.Grid = NewGrid(m.Width(), m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			t := m.Tile(x, y)
			c := Cell{X: x, Y: y}
			if !t.Entity {
				w.Grid.Set(c, Tile{
					Variant:    t.Variant,
					Solid:      t.Solid,
					Foreground: t.Foreground,
					Deadly:     t.Deadly,
				})
			}
			pos := c.Center()
			if t.Player {
				w.SpawnPlayer(pos)
			}
			if t.Goal {
				w.SpawnGoal(pos)
			}
			if t.Coin {
				w.SpawnCoin(pos)
			}
			if t.Cloud {
				w.SpawnCloud(pos)
			}
		}
	}
}

// Bodies returns the collision candidates around cell: solid tiles and void
// columns of the 3×3 neighborhood in row-major order, then every other
// colliding entity in ascending id order.
func (w *World) Bodies(cell Cell, self EntityID) []Body {
	bodies := make([]Body, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := Cell{X: cell.X + dx, Y: cell.Y + dy}
			if !w.Grid.InColumns(c.X) {
				bodies = append(bodies, Body{Kind: BodyVoid, Cell: c})
				continue
			}
			if t, ok := w.Grid.Tile(c); ok && t.Solid {
				bodies = append(bodies, Body{Kind: BodyTile, Cell: c, Tile: t})
			}
		}
	}
	for _, id := range w.ids() {
		e := w.entities[id]
		if id == self || !e.Collides {
			continue
		}
		bodies = append(bodies, e.Body())
	}
	return bodies
}

// Entity looks up an entity by id.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Entities returns all entities in ascending id order.
func (w *World) Entities() []*Entity {
	ids := w.ids()
	out := make([]*Entity, len(ids))
	for i, id := range ids {
		out[i] = w.entities[id]
	}
	return out
}

// Player returns the entity currently under player control.
func (w *World) Player() (*Entity, bool) {
	if w.player == 0 {
		return nil, false
	}
	return w.Entity(w.player)
}

// DrainEvents returns the queued events and clears the queue.
func (w *World) DrainEvents() []core.Event {
	ev := w.Events
	w.Events = nil
	return ev
}

func (w *World) emit(ev core.Event) {
	w.Events = append(w.Events, ev)
}

func (w *World) ids() []EntityID {
	ids := make([]EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (w *World) spawn(kind Kind, pos mgl32.Vec2) *Entity {
	w.nextID++
	e := &Entity{
		ID:       w.nextID,
		Kind:     kind,
		Pos:      pos,
		Start:    pos,
		Collides: true,
	}
	w.entities[e.ID] = e
	return e
}

// SpawnPlayer places the player, frozen for the spawn delay.
func (w *World) SpawnPlayer(pos mgl32.Vec2) *Entity {
	e := w.spawn(KindPlayer, pos)
	e.Skin = w.Skin
	e.Behavior = SpawningPlayer
	e.Timer.Start(w.rules.SpawnDelay)
	return e
}

// SpawnGoal places a level exit.
func (w *World) SpawnGoal(pos mgl32.Vec2) *Entity {
	e := w.spawn(KindGoal, pos)
	e.Behavior = Goal
	return e
}

// SpawnCoin places a collectible. Coins do not collide.
func (w *World) SpawnCoin(pos mgl32.Vec2) *Entity {
	e := w.spawn(KindCoin, pos)
	e.Behavior = Pickup
	e.Collides = false
	return e
}

// SpawnCloud places a platform that vanishes shortly after being stood on.
func (w *World) SpawnCloud(pos mgl32.Vec2) *Entity {
	e := w.spawn(KindCloud, pos)
	e.Behavior = DecayingPlatform
	return e
}

func firstMap(ctx MapSource) string {
	list := ctx.MapList()
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
