// Package obby implements the obby platformer as a registered game.
// The world simulation lives in the sim subpackage; this package feeds it
// fixed ticks, serves levels and draws the result.
package obby

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-obby/internal/config"
	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby/sim"
	"github.com/vovakirdan/tui-obby/internal/levels"
	"github.com/vovakirdan/tui-obby/internal/registry"
	"github.com/vovakirdan/tui-obby/internal/telemetry"
)

// Mode selects how lives are handled.
type Mode int

const (
	ModeCampaign Mode = iota // limited reserve lives, the run ends when they are gone
	ModePractice             // infinite lives
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelsDir is the level directory; empty selects the built-in levels.
var levelsDir string

// skin is the player appearance chosen before a run.
var skin int

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir sets the directory levels are read from.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetSkin selects the player skin for games created afterwards.
func SetSkin(s int) {
	skin = ((s % len(Skins)) + len(Skins)) % len(Skins)
}

// CurrentSkin returns the selected player skin.
func CurrentSkin() int {
	return skin
}

// SetLogger sets the logger used for level loading diagnostics.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("obby", func() registry.Game { return New() })
	registry.Register("obby_practice", func() registry.Game { return NewPractice() })
}

// Game implements the obby platformer.
type Game struct {
	mode    Mode
	skin    int
	runtime core.RuntimeConfig
	cfg     config.ObbyConfig
	theme   theme

	world   *sim.World
	library *levels.Library
	loadErr error

	tick       uint64
	paused     bool
	gameOver   bool
	finalScore int
	finalLevel int
	deaths     int

	ctx  context.Context
	span trace.Span
}

// New creates a new obby game with limited lives.
func New() *Game {
	return &Game{mode: ModeCampaign, skin: skin}
}

// NewPractice creates a new obby game with infinite lives.
func NewPractice() *Game {
	return &Game{mode: ModePractice, skin: skin}
}

// UseSkin overrides the skin for this game only. Takes effect on Reset.
func (g *Game) UseSkin(s int) {
	g.skin = ((s % len(Skins)) + len(Skins)) % len(Skins)
}

// Practice reports whether lives are unlimited.
func (g *Game) Practice() bool {
	return g.mode == ModePractice
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "obby_practice"
	}
	return "obby"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Obby (Practice)"
	}
	return "Obby"
}

// Reset starts a new run from the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.endRun("reset")

	g.runtime = cfg
	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.finalScore = 0
	g.finalLevel = 0
	g.deaths = 0

	// Load config from file, fall back to defaults
	obbyCfg, err := config.LoadObby(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		obbyCfg = config.DefaultObbyConfig()
	}
	config.ApplyObbyPreset(&obbyCfg, difficultyPreset)
	g.cfg = obbyCfg
	g.theme = newTheme(obbyCfg.Theme)

	g.ctx, g.span = telemetry.Tracer("obby").Start(context.Background(), "obby.run")
	g.span.SetAttributes(
		attribute.String("game.id", g.ID()),
		attribute.String("difficulty", string(difficultyPreset)),
		attribute.Int("skin", g.skin),
	)

	g.library, g.loadErr = levels.NewLibrary(levels.NewLoader(levelsDir))
	if g.loadErr != nil {
		logger.Error("cannot index levels", "dir", levelsDir, "err", g.loadErr)
		g.library = nil
	}

	g.world = sim.NewWorld(rulesFrom(obbyCfg, g.mode))
	g.world.Skin = g.skin
	g.world.Init(g.source())
}

// rulesFrom maps the YAML config onto simulation rules.
func rulesFrom(cfg config.ObbyConfig, mode Mode) sim.Rules {
	r := sim.DefaultRules()
	r.Gravity = cfg.Physics.Gravity
	r.MoveSpeed = cfg.Physics.MoveSpeed
	r.JumpSpeed = cfg.Physics.JumpSpeed
	r.DragSpeed = cfg.Physics.DragSpeed
	r.AccelFactor = cfg.Physics.AccelFactor
	r.FallMargin = cfg.Physics.FallMargin

	r.SpawnDelay = cfg.Timers.SpawnDelay
	r.DeathDelay = cfg.Timers.DeathDelay
	r.WinDelay = cfg.Timers.WinDelay
	r.CloudStandSec = cfg.Timers.CloudStand
	r.CloudHiddenSec = cfg.Timers.CloudHidden

	r.StartLives = cfg.Gameplay.Lives
	r.CoinScore = cfg.Gameplay.CoinScore
	r.LevelBonus = cfg.Gameplay.LevelBonus
	r.CoinsPerLife = cfg.Gameplay.CoinsPerLife
	r.PickupRadius = cfg.Gameplay.PickupRadius
	r.InfiniteLives = mode == ModePractice
	return r
}

// source returns the level source; a nil library means no levels at all.
func (g *Game) source() sim.MapSource {
	if g.library == nil {
		return sim.TickContext{}
	}
	return g.library
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	ctx := sim.TickContext{
		Delta:  g.runtime.TickDT(g.cfg.Physics.MaxDT),
		Input:  in,
		Levels: g.source(),
	}
	load := g.world.Tick(ctx)
	switch load.Status {
	case sim.MapReady:
		logger.Debug("level started", "name", load.Name, "level", g.world.Level+1)
		g.span.AddEvent("level.start", trace.WithAttributes(attribute.String("level.id", load.Name)))
	case sim.MapNotFound:
		if load.Name != "" {
			logger.Warn("level not found", "name", load.Name)
		}
	}

	if g.library != nil && g.library.Pending() {
		if err := g.library.LoadPending(g.ctx); err != nil {
			logger.Error("level load failed", "err", err)
		}
	}

	events := g.world.DrainEvents()
	for _, ev := range events {
		switch ev.Kind {
		case core.EventDied:
			g.deaths++
		case core.EventGameOver:
			g.gameOver = true
			g.finalScore = ev.Score
			g.finalLevel = ev.Level
			g.endRun("game_over")
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// endRun closes the telemetry span of the current run, if any.
func (g *Game) endRun(reason string) {
	if g.span == nil {
		return
	}
	g.span.SetAttributes(
		attribute.String("run.end", reason),
		attribute.Int("run.score", g.Summary().Score),
		attribute.Int("run.deaths", g.deaths),
		attribute.Int64("run.ticks", int64(g.tick)),
	)
	g.span.End()
	g.span = nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:    g.world.Score,
		Level:    g.world.Level,
		Lives:    g.world.LivesExtra,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.gameOver {
		// The world already rewound for the next run.
		st.Score = g.finalScore
		st.Level = g.finalLevel
	}
	return st
}

// RunSummary describes a finished or running playthrough.
type RunSummary struct {
	GameID   string
	Score    int
	Level    int
	Deaths   int
	Skin     int
	Duration time.Duration
}

// Summary reports the run so far.
func (g *Game) Summary() RunSummary {
	st := g.State()
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return RunSummary{
		GameID:   g.ID(),
		Score:    st.Score,
		Level:    st.Level,
		Deaths:   g.deaths,
		Skin:     g.skin,
		Duration: time.Duration(g.tick) * time.Second / time.Duration(rate),
	}
}

// World exposes the simulation for inspection.
func (g *Game) World() *sim.World {
	return g.world
}
