// Package levels loads obby level files and serves them to the simulation.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby/sim"
	"github.com/vovakirdan/tui-obby/internal/levels/formats"
)

//go:embed data
var builtin embed.FS

// Level is a loaded level. It implements sim.Map.
type Level struct {
	ID       string
	Name     string
	Metadata map[string]string
	FilePath string

	width      int
	height     int
	background core.Color
	tiles      []sim.MapTile
}

var _ sim.Map = (*Level)(nil)

func (l *Level) Width() int             { return l.width }
func (l *Level) Height() int            { return l.height }
func (l *Level) Background() core.Color { return l.background }

// Tile returns the tile at (x, y); cells outside the level are empty.
func (l *Level) Tile(x, y int) sim.MapTile {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return sim.MapTile{}
	}
	return l.tiles[y*l.width+x]
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for the directory root.
// An empty root selects the built-in levels.
func NewLoader(root string) *Loader {
	if root == "" {
		sub, err := fs.Sub(builtin, "data")
		if err != nil {
			panic(fmt.Sprintf("levels: embedded data: %v", err))
		}
		return &Loader{fsys: sub, root: "."}
	}
	return &Loader{fsys: os.DirFS(root), root: "."}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, root: "."}
}

// ListIDs returns the ids of all level files in sorted order without
// parsing them. The id of a level is its file name without extension.
func (l *Loader) ListIDs() ([]string, error) {
	paths, err := l.paths()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadAll loads every level file. Returns levels sorted by ID for
// deterministic ordering. Invalid files are skipped.
func (l *Loader) LoadAll() ([]*Level, error) {
	ids, err := l.ListIDs()
	if err != nil {
		return nil, err
	}
	levels := make([]*Level, 0, len(ids))
	for _, id := range ids {
		lvl, err := l.LoadByID(id)
		if err != nil {
			continue
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (*Level, error) {
	paths, err := l.paths()
	if err != nil {
		return nil, err
	}
	p, ok := paths[id]
	if !ok {
		return nil, fmt.Errorf("level not found: %s", id)
	}
	return l.LoadFile(p)
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (*Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}

	id := idFromPath(p)
	name := parsed.Name
	if name == "" {
		name = id
	}
	return &Level{
		ID:         id,
		Name:       name,
		Metadata:   parsed.Metadata,
		FilePath:   p,
		width:      parsed.Width,
		height:     parsed.Height,
		background: parsed.Background,
		tiles:      parsed.Tiles,
	}, nil
}

// paths maps level ids to file paths.
func (l *Loader) paths() (map[string]string, error) {
	paths := make(map[string]string)
	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}
		id := idFromPath(p)
		if prev, dup := paths[id]; dup {
			return fmt.Errorf("duplicate level id %q: %s and %s", id, prev, p)
		}
		paths[id] = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}
	return paths, nil
}

func idFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
