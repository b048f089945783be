package obby

import "github.com/vovakirdan/tui-obby/internal/core"

// Skin is a selectable player appearance. Each glyph pair fills the two
// screen columns of one tile.
type Skin struct {
	Name  string
	Right string
	Left  string
	Color core.Color
}

// Skins lists the characters offered before a run.
var Skins = []Skin{
	{Name: "Blocky", Right: "█▌", Left: "▐█", Color: core.ColorBrightYellow},
	{Name: "Robot", Right: "[>", Left: "<]", Color: core.ColorBrightCyan},
	{Name: "Ghost", Right: "ᗣ ", Left: " ᗣ", Color: core.ColorBrightWhite},
	{Name: "Frog", Right: "ö>", Left: "<ö", Color: core.ColorBrightGreen},
	{Name: "Ninja", Right: "▀▶", Left: "◀▀", Color: core.ColorBrightMagenta},
}
