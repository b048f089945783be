package obby

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-obby/internal/config"
	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby/sim"
)

// Each tile is drawn two columns wide so cells look roughly square.
const tileCols = 2

// hudRows is the number of screen rows above the level view.
const hudRows = 1

// theme holds the resolved drawing colors.
type theme struct {
	block, deadly, player, goal, coin, cloud, text core.Color
}

func newTheme(t config.ObbyTheme) theme {
	pick := func(name string, fallback core.Color) core.Color {
		if c, ok := core.ParseColor(name); ok {
			return c
		}
		return fallback
	}
	return theme{
		block:  pick(t.Block, core.ColorGray),
		deadly: pick(t.Deadly, core.ColorBrightRed),
		player: pick(t.Player, core.ColorBrightYellow),
		goal:   pick(t.Goal, core.ColorBrightGreen),
		coin:   pick(t.Coin, core.ColorYellow),
		cloud:  pick(t.Cloud, core.ColorBrightWhite),
		text:   pick(t.Text, core.ColorBrightCyan),
	}
}

// view maps world coordinates to screen cells.
type view struct {
	camX, camY int // top-left tile
	rows       int
}

// camera returns the first visible tile on one axis. Maps smaller than the
// view are centered; larger ones follow focus and stop at the edges.
func camera(focus float32, viewTiles, mapTiles int) int {
	if mapTiles <= viewTiles {
		return -(viewTiles - mapTiles) / 2
	}
	return core.Clamp(int(focus)-viewTiles/2, 0, mapTiles-viewTiles)
}

func (v view) tile(x, y int) (int, int) {
	return (x - v.camX) * tileCols, hudRows + y - v.camY
}

func (v view) entity(pos [2]float32) (int, int) {
	sx := math.Round(float64((pos[0] - 0.5 - float32(v.camX)) * tileCols))
	sy := math.Round(float64(pos[1] - 0.5 - float32(v.camY)))
	return int(sx), hudRows + int(sy)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w := g.world

	g.drawHUD(dst)

	rows := dst.Height() - hudRows
	if w.Map() == nil {
		msg := "LOADING..."
		if g.loadErr != nil || g.library == nil || len(g.library.MapList()) == 0 {
			msg = "NO LEVELS FOUND"
		}
		dst.DrawTextCentered(hudRows+rows/2, msg, g.theme.text)
		return
	}

	focus := [2]float32{float32(w.Grid.Width) / 2, float32(w.Grid.Height) / 2}
	if p, ok := w.Player(); ok {
		focus = [2]float32{p.Pos.X(), p.Pos.Y()}
	}
	v := view{
		camX: camera(focus[0], dst.Width()/tileCols, w.Grid.Width),
		camY: camera(focus[1], rows, w.Grid.Height),
		rows: rows,
	}

	g.drawSky(dst, v)
	g.drawTiles(dst, v, false)
	for _, e := range w.Entities() {
		g.drawEntity(dst, v, e)
	}
	g.drawTiles(dst, v, true)

	mid := hudRows + rows/2
	switch {
	case g.gameOver:
		g.drawBanner(dst, mid, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.finalScore))
	case g.paused:
		g.drawBanner(dst, mid, "PAUSED", "Press P to resume")
	case w.CenterText != "":
		g.drawBanner(dst, mid, w.CenterText)
	}
}

// drawBanner draws lines in a framed box centered on row mid.
func (g *Game) drawBanner(dst *core.Screen, mid int, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	r := core.NewRect(0, mid-len(lines)/2-1, width+4, len(lines)+2)
	r.X = (dst.Width() - r.W) / 2
	blank := strings.Repeat(" ", r.W)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawText(r.X, y, blank, core.ColorDefault)
	}
	dst.DrawBox(r, g.theme.text)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+1+i, l, g.theme.text)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	lives := strconv.Itoa(w.LivesExtra)
	if g.mode == ModePractice {
		lives = "∞"
	}
	secs := int(w.Elapsed)
	hud := fmt.Sprintf(" LEVEL %d  SCORE %06d  COINS %d/%d  LIVES %s  TIME %02d:%02d ",
		w.Level+1, w.Score, w.Coins, w.Rules().CoinsPerLife, lives, secs/60, secs%60)
	dst.DrawText(0, 0, hud, g.theme.text)
}

// drawSky sprinkles the level background color over empty cells.
func (g *Game) drawSky(dst *core.Screen, v view) {
	bg := g.world.Map().Background()
	if bg == core.ColorDefault {
		return
	}
	for y := max(v.camY, 0); y < min(g.world.Grid.Height, v.camY+v.rows); y++ {
		for x := max(v.camX, 0); x < g.world.Grid.Width; x++ {
			if (x+y*3)%7 != 0 {
				continue
			}
			sx, sy := v.tile(x, y)
			if sx >= dst.Width() {
				break
			}
			dst.SetColored(sx, sy, '·', bg)
		}
	}
}

// drawTiles draws either the regular tiles or the foreground layer.
func (g *Game) drawTiles(dst *core.Screen, v view, foreground bool) {
	grid := g.world.Grid
	for y := max(v.camY, 0); y < min(grid.Height, v.camY+v.rows); y++ {
		for x := max(v.camX, 0); x < grid.Width; x++ {
			sx, sy := v.tile(x, y)
			if sx >= dst.Width() {
				break
			}
			t, ok := grid.Tile(sim.Cell{X: x, Y: y})
			if !ok || t.Foreground != foreground {
				continue
			}
			glyph, color, visible := g.tileLook(t)
			if visible {
				dst.DrawText(sx, sy, glyph, color)
			}
		}
	}
}

func (g *Game) tileLook(t sim.Tile) (string, core.Color, bool) {
	switch {
	case t.Deadly:
		return "▲▲", g.theme.deadly, true
	case t.Foreground:
		return "░░", core.ColorGray, true
	case !t.Solid:
		return "", core.ColorDefault, false
	}
	switch t.Variant % 3 {
	case 1:
		return "▓▓", g.theme.block, true
	case 2:
		return "▒▒", g.theme.block, true
	default:
		return "██", g.theme.block, true
	}
}

func (g *Game) drawEntity(dst *core.Screen, v view, e *sim.Entity) {
	sx, sy := v.entity([2]float32{e.Pos.X(), e.Pos.Y()})
	switch e.Kind {
	case sim.KindPlayer:
		s := Skins[e.Skin%len(Skins)]
		glyph := s.Right
		if e.Facing == sim.FacingLeft {
			glyph = s.Left
		}
		switch e.Behavior {
		case sim.SpawningPlayer:
			if (g.tick/6)%2 == 1 {
				return
			}
		case sim.DeadPlayer:
			dst.DrawText(sx, sy, "✖✖", g.theme.deadly)
			return
		case sim.WonPlayer:
			dst.DrawText(sx, sy, "\\/", g.theme.goal)
			return
		}
		color := s.Color
		if color == core.ColorDefault {
			color = g.theme.player
		}
		dst.DrawText(sx, sy, glyph, color)
	case sim.KindGoal:
		dst.DrawText(sx, sy, "▐▌", g.theme.goal)
	case sim.KindCoin:
		dst.DrawText(sx, sy, "()", g.theme.coin)
	case sim.KindCloud:
		glyph := "≈≈"
		// A cloud someone stands on crumbles as its timer runs out.
		if e.Pos == e.Start && e.Timer.Alpha() >= 0.5 {
			glyph = "∙∙"
		}
		dst.DrawText(sx, sy, glyph, g.theme.cloud)
	}
}
