package main

import (
	"testing"

	"github.com/vovakirdan/tui-obby/internal/levels"
)

func TestSkinIndex(t *testing.T) {
	if got := skinIndex("NINJA"); got != 4 {
		t.Errorf("skinIndex(NINJA) = %d, expected 4", got)
	}
	if got := skinIndex("dragon"); got != -1 {
		t.Errorf("skinIndex(dragon) = %d, expected -1", got)
	}
}

func TestCountPickupsBuiltin(t *testing.T) {
	lvls, err := levels.NewLoader("").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	var coins, clouds int
	for _, l := range lvls {
		c, cl := countPickups(l)
		coins += c
		clouds += cl
	}
	if coins == 0 || clouds == 0 {
		t.Errorf("built-in levels should have coins and clouds, got %d and %d", coins, clouds)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"play": false, "levels": false, "scores": false, "serve": false, "replay": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestScoresFlags(t *testing.T) {
	for _, name := range []string{"practice", "browse", "limit", "clear"} {
		if scoresCmd.Flags().Lookup(name) == nil {
			t.Errorf("scores is missing --%s", name)
		}
	}
}
