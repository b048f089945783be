package levels

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/games/obby/sim"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"b.yaml":        {Data: []byte("name: Bee\nbackground: blue\nrows:\n  - \" @ G\"\n  - \"####\"\n")},
		"a.txt":         {Data: []byte("@\n#\n")},
		"sub/c.yml":     {Data: []byte("rows: [\"@$\", \"##\"]\n")},
		"broken.yaml":   {Data: []byte("rows: [\"###\"]\n")},
		"notes.md":      {Data: []byte("not a level")},
		"sub/empty.txt": {Data: []byte("")},
	}
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := NewFSLoader(testFS()).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	want := []string{"a", "b", "broken", "c", "empty"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}
}

func TestLoaderLoadAllSkipsInvalid(t *testing.T) {
	lvls, err := NewFSLoader(testFS()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 3 {
		t.Fatalf("expected 3 valid levels, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderLoadByID(t *testing.T) {
	lvl, err := NewFSLoader(testFS()).LoadByID("b")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.ID != "b" || lvl.Name != "Bee" {
		t.Errorf("unexpected identity %q / %q", lvl.ID, lvl.Name)
	}
	if lvl.Width() != 4 || lvl.Height() != 2 {
		t.Errorf("expected 4x2, got %dx%d", lvl.Width(), lvl.Height())
	}
	if lvl.Background() != core.ColorBlue {
		t.Errorf("expected blue background, got %v", lvl.Background())
	}
	if !lvl.Tile(1, 0).Player || !lvl.Tile(3, 0).Goal || !lvl.Tile(0, 1).Solid {
		t.Error("tiles not where the rows put them")
	}
	if lvl.Tile(-1, 0) != (sim.MapTile{}) || lvl.Tile(4, 1) != (sim.MapTile{}) {
		t.Error("out of range tiles should be empty")
	}

	// Unnamed levels are named after their file.
	a, err := NewFSLoader(testFS()).LoadByID("a")
	if err != nil {
		t.Fatalf("LoadByID(a) failed: %v", err)
	}
	if a.Name != "a" {
		t.Errorf("expected name 'a', got %q", a.Name)
	}

	if _, err := NewFSLoader(testFS()).LoadByID("zzz"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestLoaderDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"x.yaml":     {Data: []byte("rows: [\"@\"]\n")},
		"more/x.txt": {Data: []byte("@\n")},
	}
	if _, err := NewFSLoader(fsys).ListIDs(); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestBuiltinLevelsLoad(t *testing.T) {
	loader := NewLoader("")
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) < 4 {
		t.Fatalf("expected at least 4 built-in levels, got %v", ids)
	}
	for _, id := range ids {
		lvl, err := loader.LoadByID(id)
		if err != nil {
			t.Errorf("built-in level %s: %v", id, err)
			continue
		}
		goals := 0
		for y := 0; y < lvl.Height(); y++ {
			for x := 0; x < lvl.Width(); x++ {
				if lvl.Tile(x, y).Goal {
					goals++
				}
			}
		}
		if goals == 0 {
			t.Errorf("built-in level %s has no goal", id)
		}
	}
}

func TestLibraryPendingThenReady(t *testing.T) {
	lib, err := NewLibrary(NewFSLoader(testFS()))
	if err != nil {
		t.Fatalf("NewLibrary failed: %v", err)
	}
	if got := lib.MapList(); len(got) != 5 || got[0] != "a" {
		t.Fatalf("unexpected map list %v", got)
	}

	if _, status := lib.Map("b"); status != sim.MapPending {
		t.Fatalf("first request should be pending, got %v", status)
	}
	if _, status := lib.Map("b"); status != sim.MapPending {
		t.Fatalf("repeated request should stay pending, got %v", status)
	}
	if !lib.Pending() {
		t.Fatal("expected a pending load")
	}

	if err := lib.LoadPending(context.Background()); err != nil {
		t.Fatalf("LoadPending failed: %v", err)
	}
	if lib.Pending() {
		t.Error("nothing should be pending after LoadPending")
	}
	m, status := lib.Map("b")
	if status != sim.MapReady || m == nil {
		t.Fatalf("expected ready map, got %v", status)
	}
	if m.Width() != 4 {
		t.Errorf("expected width 4, got %d", m.Width())
	}
}

func TestLibraryNotFound(t *testing.T) {
	lib, err := NewLibrary(NewFSLoader(testFS()))
	if err != nil {
		t.Fatalf("NewLibrary failed: %v", err)
	}
	if _, status := lib.Map("nope"); status != sim.MapNotFound {
		t.Errorf("unknown level should be not found, got %v", status)
	}

	// A level that fails to parse is reported once, then not found.
	if _, status := lib.Map("broken"); status != sim.MapPending {
		t.Fatalf("expected pending, got %v", status)
	}
	if err := lib.LoadPending(context.Background()); err == nil {
		t.Error("expected load error for broken level")
	}
	if _, status := lib.Map("broken"); status != sim.MapNotFound {
		t.Errorf("failed level should be not found, got %v", status)
	}
}

func TestLibraryLevel(t *testing.T) {
	lib, err := NewLibrary(NewFSLoader(testFS()))
	if err != nil {
		t.Fatalf("NewLibrary failed: %v", err)
	}
	lvl, err := lib.Level(context.Background(), "c")
	if err != nil {
		t.Fatalf("Level failed: %v", err)
	}
	if lvl.FilePath != "sub/c.yml" {
		t.Errorf("unexpected path %q", lvl.FilePath)
	}
	if _, status := lib.Map("c"); status != sim.MapReady {
		t.Errorf("eagerly loaded level should be ready, got %v", status)
	}
}

func TestLibraryDrivesWorld(t *testing.T) {
	lib, err := NewLibrary(NewFSLoader(fstest.MapFS{
		"1.txt": {Data: []byte(" @ \n###\n")},
	}))
	if err != nil {
		t.Fatalf("NewLibrary failed: %v", err)
	}
	w := sim.NewWorld(sim.DefaultRules())
	w.Init(lib)
	ctx := &sim.TickContext{Delta: 1.0 / 60, Levels: lib}

	if load := w.Tick(ctx); load.Status != sim.MapPending {
		t.Fatalf("expected pending load, got %+v", load)
	}
	if err := lib.LoadPending(context.Background()); err != nil {
		t.Fatalf("LoadPending failed: %v", err)
	}
	if load := w.Tick(ctx); load.Status != sim.MapReady || load.Name != "1" {
		t.Fatalf("expected level 1 ready, got %+v", load)
	}
	if n := len(w.Entities()); n != 1 {
		t.Errorf("expected the player to be spawned, got %d entities", n)
	}
}
