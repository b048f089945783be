package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-obby/internal/core"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
name: Demo
background: blue
legend:
  "x": {traits: [block, deadly], variant: 3}
rows:
  - "  @   G"
  - "###xx#"
metadata:
  author: test
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "demo" || lvl.Name != "Demo" {
		t.Errorf("unexpected identity %q / %q", lvl.ID, lvl.Name)
	}
	if lvl.Width != 7 || lvl.Height != 2 {
		t.Fatalf("expected 7x2, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Background != core.ColorBlue {
		t.Errorf("Background = %v, expected blue", lvl.Background)
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("metadata not kept: %v", lvl.Metadata)
	}

	player := lvl.Tiles[0*7+2]
	if !player.Player || !player.Entity {
		t.Errorf("expected player entity at (2,0), got %+v", player)
	}
	goal := lvl.Tiles[0*7+6]
	if !goal.Goal || !goal.Entity {
		t.Errorf("expected goal entity at (6,0), got %+v", goal)
	}
	spike := lvl.Tiles[1*7+3]
	if !spike.Solid || !spike.Deadly || spike.Variant != 3 {
		t.Errorf("custom legend not applied: %+v", spike)
	}
	// Second row is one short and padded with empty cells.
	if pad := lvl.Tiles[1*7+6]; pad.Solid || pad.Entity {
		t.Errorf("padding should be empty, got %+v", pad)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no rows", "id: x\n", "no rows"},
		{"unknown tile", "rows: [\"@?\"]\n", "unknown tile"},
		{"no player", "rows: [\"###\"]\n", "exactly one player"},
		{"two players", "rows: [\"@@\"]\n", "exactly one player"},
		{"bad legend key", "legend: {ab: {traits: [block]}}\nrows: [\"@\"]\n", "single character"},
		{"bad trait", "legend: {x: {traits: [lava]}}\nrows: [\"@x\"]\n", "unknown trait"},
		{"bad color", "background: plaid\nrows: [\"@\"]\n", "background"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	data := []byte("; a comment\r\n @ $ ~ G\r\n^^####==\r\n\r\n")
	lvl, err := ParseText(data)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if lvl.Width != 8 || lvl.Height != 2 {
		t.Fatalf("expected 8x2, got %dx%d", lvl.Width, lvl.Height)
	}
	if !lvl.Tiles[3].Coin || !lvl.Tiles[5].Cloud {
		t.Error("entities not placed")
	}
	if !lvl.Tiles[8].Deadly || lvl.Tiles[14].Variant != 1 {
		t.Error("blocks not placed")
	}
}
