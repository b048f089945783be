// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby/sim"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         string              `yaml:"id"`
	Name       string              `yaml:"name"`
	Background string              `yaml:"background,omitempty"`
	Legend     map[string]TileSpec `yaml:"legend,omitempty"`
	Rows       []string            `yaml:"rows"`
	Metadata   map[string]string   `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID         string
	Name       string
	Width      int
	Height     int
	Background core.Color
	Tiles      []sim.MapTile // row-major
	Metadata   map[string]string
}

// ParseYAML parses a YAML level file. Legend entries extend or override the
// default legend; every key must be a single character.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	legend := make(map[rune]TileSpec, len(DefaultLegend)+len(yl.Legend))
	for r, spec := range DefaultLegend {
		legend[r] = spec
	}
	for key, spec := range yl.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return Level{}, fmt.Errorf("legend key %q is not a single character", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		legend[r] = spec
	}

	level, err := parseRows(yl.Rows, legend)
	if err != nil {
		return Level{}, err
	}
	level.ID = yl.ID
	level.Name = yl.Name
	level.Metadata = yl.Metadata
	if yl.Background != "" {
		c, ok := core.ParseColor(yl.Background)
		if !ok {
			return Level{}, fmt.Errorf("unknown background color %q", yl.Background)
		}
		level.Background = c
	}
	return level, nil
}

// ParseText parses a plain text level: one line per row, default legend.
// Lines starting with ';' are comments.
func ParseText(data []byte) (Level, error) {
	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	// Trailing blank lines are editor noise, not level rows.
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return parseRows(rows, DefaultLegend)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}

// parseRows builds the tile grid. Short rows are padded with empty cells.
func parseRows(rows []string, legend map[rune]TileSpec) (Level, error) {
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("level has no rows")
	}
	width := 0
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	if width == 0 {
		return Level{}, fmt.Errorf("level has no columns")
	}

	level := Level{
		Width:  width,
		Height: len(rows),
		Tiles:  make([]sim.MapTile, width*len(rows)),
	}
	players := 0
	for y, row := range rows {
		x := 0
		for _, r := range row {
			spec, ok := legend[r]
			if !ok {
				return Level{}, fmt.Errorf("row %d col %d: unknown tile %q", y+1, x+1, r)
			}
			tile, err := spec.MapTile()
			if err != nil {
				return Level{}, fmt.Errorf("row %d col %d: %w", y+1, x+1, err)
			}
			if tile.Player {
				players++
			}
			level.Tiles[y*width+x] = tile
			x++
		}
	}
	if players != 1 {
		return Level{}, fmt.Errorf("level needs exactly one player start, found %d", players)
	}
	return level, nil
}
