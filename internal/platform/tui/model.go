package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/registry"
	"github.com/vovakirdan/tui-obby/internal/replay"
	"github.com/vovakirdan/tui-obby/internal/sfx"
)

// GameModel runs one game inside a session. The session owns the tick
// loop and forwards TickMsg here; GameModel never schedules ticks itself.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	hold     *HoldTracker
	sound    *sfx.Player
	recorder *replay.Recording

	gameState core.GameState
	events    []core.Event
	quitting  bool
	back      bool
}

// NewGameModel creates a model for game. sound and recorder may be nil.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, hold *HoldTracker, sound *sfx.Player, recorder *replay.Recording) GameModel {
	if hold == nil {
		hold = NewHoldTracker(0, 0)
	}
	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		keys:     NewKeyMapper(),
		hold:     hold,
		sound:    sound,
		recorder: recorder,
	}
}

// Start resets the game for a new run.
func (m *GameModel) Start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.hold.Release()
}

// Update handles key, resize and tick messages.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The camera follows the player, so a resize keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		m.handleTick()
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, nil
	}
	if action == core.ActionBack && m.gameState.Paused {
		m.back = true
		return m, nil
	}
	m.hold.Press(action)
	return m, nil
}

// handleTick steps the simulation once.
func (m *GameModel) handleTick() {
	if m.gameState.GameOver {
		m.events = nil
		return
	}
	in := m.hold.Frame()
	if m.recorder != nil {
		m.recorder.Add(in)
	}
	result := m.game.Step(in)
	m.gameState = result.State
	m.events = result.Events
	m.sound.Play(result.Events)
}

// saveScreenshot writes the current screen to ~/.obby/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".obby", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState { return m.gameState }

// Events returns the events of the last tick.
func (m GameModel) Events() []core.Event { return m.events }

// Finished reports whether the run is over.
func (m GameModel) Finished() bool { return m.gameState.GameOver }

// IsQuitting returns true if the user asked to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user left a paused game.
func (m GameModel) BackToMenu() bool { return m.back }

// Game returns the wrapped game.
func (m GameModel) Game() registry.Game { return m.game }

// Recording returns the input recorded so far, or nil.
func (m GameModel) Recording() *replay.Recording { return m.recorder }
