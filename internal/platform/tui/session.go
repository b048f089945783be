package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby"
	"github.com/vovakirdan/tui-obby/internal/replay"
	"github.com/vovakirdan/tui-obby/internal/sfx"
	"github.com/vovakirdan/tui-obby/internal/storage"
)

// SessionOptions configures a play session. Every field is optional.
type SessionOptions struct {
	Store    *storage.Store
	Sound    *sfx.Player
	Logger   *log.Logger
	Username string

	// Practice preselects practice mode on the title screen.
	Practice bool

	// RecordPath, when set, receives the input recording of every run.
	RecordPath string
	// ReplayHeader is copied into recordings; game id, tick rate and skin
	// are filled in per run.
	ReplayHeader replay.Header

	HoldInitial time.Duration
	HoldRepeat  time.Duration
}

type phase int

const (
	phaseTitle phase = iota
	phaseSelect
	phasePlay
	phaseGameOver
	phaseScores
)

// title menu entries
const (
	itemPlay = iota
	itemPractice
	itemScores
	itemQuit
)

var titleItems = []string{"Play", "Practice", "High Scores", "Quit"}

// gameOverScreen is the result card shown after a run.
type gameOverScreen struct {
	summary obby.RunSummary
	shown   int
	cleared bool
	newBest bool
	saveErr error
}

// SessionModel manages the full obby session flow:
// title -> character select -> game -> game over -> title.
// It is the top-level model for local play and SSH sessions.
type SessionModel struct {
	opts   SessionOptions
	config core.RuntimeConfig
	keys   *KeyMapper
	hold   *HoldTracker
	logger *log.Logger

	phase    phase
	cursor   int
	best     int
	practice bool
	skin     int
	frame    int

	run     *obby.Game
	game    *GameModel
	cleared bool
	over    gameOverScreen
	scores  ScoreboardModel

	quitting bool
}

// NewSessionModel creates a session starting at the title screen.
func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SessionModel{
		opts:     opts,
		config:   cfg,
		keys:     NewKeyMapper(),
		hold:     NewHoldTracker(opts.HoldInitial, opts.HoldRepeat),
		logger:   logger,
		practice: opts.Practice,
		skin:     obby.CurrentSkin(),
	}
	if opts.Practice {
		m.cursor = itemPractice
	}
	m.toTitle()
	return m
}

// toTitle shows the title screen with a fresh best score.
func (m *SessionModel) toTitle() {
	m.phase = phaseTitle
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore("obby")
	if err != nil {
		m.logger.Warn("cannot read high score", "err", err)
		return
	}
	m.best = best
}

// Init starts the tick loop.
func (m SessionModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	var cmd tea.Cmd
	switch m.phase {
	case phaseTitle:
		cmd = m.updateTitle(msg)
	case phaseSelect:
		cmd = m.updateSelect(msg)
	case phasePlay:
		cmd = m.updatePlay(msg)
	case phaseGameOver:
		cmd = m.updateGameOver(msg)
	case phaseScores:
		cmd = m.updateScores(msg)
	}

	if m.quitting {
		m.finishRecording()
		return m, tea.Quit
	}
	if _, ok := msg.(TickMsg); ok {
		m.frame++
		return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
	}
	return m, cmd
}

func (m *SessionModel) updateTitle(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.keys.MapKeyToMenuAction(km) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(titleItems)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.openScores()
	case MenuActionSelect:
		switch m.cursor {
		case itemPlay, itemPractice:
			m.practice = m.cursor == itemPractice
			m.phase = phaseSelect
		case itemScores:
			m.openScores()
		case itemQuit:
			m.quitting = true
		}
	}
	return nil
}

func (m *SessionModel) openScores() {
	m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
	m.phase = phaseScores
}

func (m *SessionModel) updateSelect(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.keys.MapKeyToMenuAction(km) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionLeft, MenuActionUp:
		m.skin = (m.skin + len(obby.Skins) - 1) % len(obby.Skins)
	case MenuActionRight, MenuActionDown:
		m.skin = (m.skin + 1) % len(obby.Skins)
	case MenuActionBack:
		m.toTitle()
	case MenuActionSelect:
		m.startRun()
	}
	return nil
}

// startRun creates a fresh game with the chosen skin and mode.
func (m *SessionModel) startRun() {
	g := obby.New()
	if m.practice {
		g = obby.NewPractice()
	}
	g.UseSkin(m.skin)

	var rec *replay.Recording
	if m.opts.RecordPath != "" {
		h := m.opts.ReplayHeader
		h.GameID = g.ID()
		h.TickRate = m.config.TickRate
		h.Skin = m.skin
		rec = replay.New(h)
	}

	gm := NewGameModel(g, m.config, m.hold, m.opts.Sound, rec)
	gm.Start()
	m.run = g
	m.game = &gm
	m.cleared = false
	m.phase = phasePlay
	m.logger.Info("run started", "user", m.opts.Username, "game", g.ID(), "skin", obby.Skins[m.skin].Name)
}

func (m *SessionModel) updatePlay(msg tea.Msg) tea.Cmd {
	gm, cmd := m.game.Update(msg)
	m.game = &gm

	for _, ev := range gm.Events() {
		switch ev.Kind {
		case core.EventWon:
			m.cleared = true
		case core.EventDied:
			m.cleared = false
		}
	}

	switch {
	case gm.IsQuitting():
		m.quitting = true
	case gm.BackToMenu():
		m.logger.Info("run abandoned", "user", m.opts.Username, "score", gm.State().Score)
		m.finishRecording()
		m.game = nil
		m.toTitle()
	case gm.Finished():
		m.finishRun()
	}
	return cmd
}

// finishRun stores the result of a completed run and shows the result card.
func (m *SessionModel) finishRun() {
	sum := m.run.Summary()
	m.over = gameOverScreen{summary: sum, cleared: m.cleared}

	if store := m.opts.Store; store != nil {
		best, err := store.HighScore(sum.GameID)
		if err != nil {
			m.logger.Warn("cannot read high score", "err", err)
		}
		m.over.newBest = sum.Score > 0 && sum.Score > best

		if sum.Score > 0 {
			if _, err := store.SaveScore(sum.GameID, sum.Score); err != nil {
				m.logger.Error("cannot save score", "err", err)
				m.over.saveErr = err
			}
		}
		_, err = store.SaveRun(storage.Run{
			GameID:   sum.GameID,
			Player:   m.opts.Username,
			Skin:     sum.Skin,
			Score:    sum.Score,
			Level:    sum.Level,
			Deaths:   sum.Deaths,
			Duration: sum.Duration,
		})
		if err != nil {
			m.logger.Error("cannot save run", "err", err)
			m.over.saveErr = err
		}
	}

	m.logger.Info("run finished",
		"user", m.opts.Username,
		"game", sum.GameID,
		"score", sum.Score,
		"level", sum.Level+1,
		"deaths", sum.Deaths,
		"duration", sum.Duration.Round(time.Second),
	)
	m.finishRecording()
	m.phase = phaseGameOver
}

// finishRecording writes the current run's input, if recording.
func (m *SessionModel) finishRecording() {
	if m.game == nil || m.opts.RecordPath == "" {
		return
	}
	rec := m.game.Recording()
	if rec == nil || rec.Ticks() == 0 {
		return
	}
	if err := replay.Save(m.opts.RecordPath, rec); err != nil {
		m.logger.Error("cannot save recording", "path", m.opts.RecordPath, "err", err)
		return
	}
	m.logger.Info("recording saved", "path", m.opts.RecordPath, "ticks", rec.Ticks())
	m.game.recorder = nil
}

// countStep is how much the displayed score grows per tick.
func countStep(score int) int {
	return max(1, score/90)
}

func (m *SessionModel) updateGameOver(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TickMsg:
		if m.over.shown < m.over.summary.Score {
			m.over.shown = min(m.over.summary.Score, m.over.shown+countStep(m.over.summary.Score))
		}
	case tea.KeyMsg:
		action, isQuit := m.keys.MapKey(msg)
		switch {
		case isQuit:
			m.quitting = true
		case action == core.ActionRestart:
			m.startRun()
		case action == core.ActionConfirm || action == core.ActionJump || action == core.ActionSkip:
			if m.over.shown < m.over.summary.Score {
				m.over.shown = m.over.summary.Score
				return nil
			}
			m.game = nil
			m.toTitle()
		case action == core.ActionBack:
			m.game = nil
			m.toTitle()
		}
	}
	return nil
}

func (m *SessionModel) updateScores(msg tea.Msg) tea.Cmd {
	sb, cmd := m.scores.Update(msg)
	if s, ok := sb.(ScoreboardModel); ok {
		m.scores = s
	}
	switch {
	case m.scores.IsQuitting():
		m.quitting = true
	case m.scores.IsGoingBack():
		m.toTitle()
	}
	return cmd
}

// View renders the current phase.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.phase {
	case phaseSelect:
		return m.viewSelect()
	case phasePlay:
		if m.game != nil {
			return m.game.View()
		}
	case phaseGameOver:
		return m.viewGameOver()
	case phaseScores:
		return m.scores.View()
	}
	return m.viewTitle()
}

const banner = `
 ██████  ██████  ██████  ██    ██
██    ██ ██   ██ ██   ██  ██  ██
██    ██ ██████  ██████    ████
██    ██ ██   ██ ██   ██    ██
 ██████  ██████  ██████     ██`

func (m SessionModel) viewTitle() string {
	w := m.config.ScreenW
	var b strings.Builder

	b.WriteString(bannerStyle.Render(centerBlock(strings.TrimPrefix(banner, "\n"), w)))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(scoreStyle.Render(fmt.Sprintf("BEST %06d", m.best)), w))
		b.WriteString("\n")
	}
	if m.opts.Username != "" {
		b.WriteString(centerText(subtleStyle.Render("Welcome, "+m.opts.Username), w))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range titleItems {
		if i == m.cursor {
			b.WriteString(centerText(selectedStyle.Render("> "+item+" <"), w))
		} else {
			b.WriteString(centerText(itemStyle.Render("  "+item+"  "), w))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), w))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewSelect() string {
	w := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("CHOOSE YOUR CHARACTER"), w))
	b.WriteString("\n\n")

	cards := make([]string, len(obby.Skins))
	for i, sk := range obby.Skins {
		label := colorStyle(sk.Color).Render(sk.Right) + "\n" + sk.Name
		if i == m.skin {
			cards[i] = selectedStyle.Render(label)
		} else {
			cards[i] = itemStyle.Render(label)
		}
	}
	b.WriteString(centerBlock(lipgloss.JoinHorizontal(lipgloss.Top, cards...), w))
	b.WriteString("\n\n")

	sk := obby.Skins[m.skin]
	preview := cardStyle.Render(colorStyle(sk.Color).Render(sk.Left + "    " + sk.Right))
	b.WriteString(centerBlock(preview, w))
	b.WriteString("\n\n")

	mode := "Campaign"
	if m.practice {
		mode = "Practice (infinite lives)"
	}
	b.WriteString(centerText(subtleStyle.Render("Mode: "+mode), w))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Left/Right: Choose  |  Enter: Start  |  Esc: Back"), w))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewGameOver() string {
	w := m.config.ScreenW
	o := m.over
	var b strings.Builder

	b.WriteString("\n")
	heading := "GAME OVER"
	if o.cleared {
		heading = "ALL LEVELS CLEARED!"
	}
	b.WriteString(centerText(titleStyle.Render(heading), w))
	b.WriteString("\n\n")

	secs := int(o.summary.Duration / time.Second)
	card := strings.Join([]string{
		scoreStyle.Render(fmt.Sprintf("SCORE  %06d", o.shown)),
		"",
		fmt.Sprintf("Level   %d", o.summary.Level+1),
		fmt.Sprintf("Deaths  %d", o.summary.Deaths),
		fmt.Sprintf("Time    %02d:%02d", secs/60, secs%60),
	}, "\n")
	b.WriteString(centerBlock(cardStyle.Render(card), w))
	b.WriteString("\n\n")

	if o.newBest && o.shown == o.summary.Score {
		best := "NEW BEST!"
		if (m.frame/20)%2 == 1 {
			best = ""
		}
		b.WriteString(centerText(bannerStyle.Render(best), w))
		b.WriteString("\n")
	}
	if o.saveErr != nil {
		b.WriteString(centerText(subtleStyle.Render("score not saved"), w))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Enter: Continue  |  R: Play again  |  Q: Quit"), w))
	b.WriteString("\n")
	return b.String()
}

// colorStyle returns the lipgloss style of a screen color.
func colorStyle(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// Run starts a local session.
func Run(cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
