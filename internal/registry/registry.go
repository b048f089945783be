// Package registry keeps the playable obby modes. Each mode registers a
// factory from its package's init(), so the CLI, the scoreboard and replays
// can look modes up by the id stored with scores and recordings.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// Game is one playable mode. Implementations hold pure logic with no
// terminal dependencies; the platform maps input, drives ticks and renders.
type Game interface {
	// ID is the stable key of the mode in score tables and recordings.
	ID() string
	Title() string

	// Reset starts a new run. Called once at start and again after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one fixed tick and returns the state after it
	// together with the events it raised.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Info describes a registered mode.
type Info struct {
	ID    string
	Title string
	// Practice modes never end on lives; their scores are listed apart.
	Practice bool
}

// Factory creates a fresh game of one mode.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. A game that has a Practice() bool method reports
// through it whether the mode is a practice one.
// Panics if the id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := Info{ID: id, Title: g.Title()}
	if p, ok := g.(interface{ Practice() bool }); ok {
		info.Practice = p.Practice()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns all modes, campaigns before practice modes, each group
// sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b Info) int {
		if a.Practice != b.Practice {
			if a.Practice {
				return 1
			}
			return -1
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Lookup returns the description of a registered mode.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create starts a new game of the mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}
