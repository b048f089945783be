package registry

import (
	"testing"

	"github.com/vovakirdan/tui-obby/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

type practiceStub struct{ stubGame }

func (practiceStub) Practice() bool { return true }

func TestRegisterCreateLookup(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	info, ok := Lookup("zz_stub")
	if !ok {
		t.Fatal("registered game should be found")
	}
	if info.Title != "Stub zz_stub" || info.Practice {
		t.Errorf("unexpected info %+v", info)
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("unexpected id %q", g.ID())
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("unknown id should not be found")
	}
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestListPutsPracticeLast(t *testing.T) {
	Register("aa_practice", func() Game { return practiceStub{stubGame{id: "aa_practice"}} })
	Register("zz_campaign", func() Game { return stubGame{id: "zz_campaign"} })

	list := List()
	pos := make(map[string]int, len(list))
	for i, info := range list {
		pos[info.ID] = i
		if i == 0 {
			continue
		}
		prev := list[i-1]
		if prev.Practice && !info.Practice {
			t.Errorf("campaign %s listed after practice %s", info.ID, prev.ID)
		}
		if prev.Practice == info.Practice && prev.ID >= info.ID {
			t.Errorf("list not sorted: %s >= %s", prev.ID, info.ID)
		}
	}
	if pos["zz_campaign"] > pos["aa_practice"] {
		t.Error("practice mode should come after every campaign")
	}
	if info, _ := Lookup("aa_practice"); !info.Practice {
		t.Error("Practice() should mark the mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
