package levels

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vovakirdan/tui-obby/internal/games/obby/sim"
	"github.com/vovakirdan/tui-obby/internal/telemetry"
)

// Library serves levels to the simulation by name.
//
// The first request for a level only records it and answers MapPending; the
// owner calls LoadPending between ticks to read requested files. A level that
// fails to load answers MapNotFound from then on.
type Library struct {
	loader *Loader

	mu        sync.Mutex
	ids       []string
	known     map[string]bool
	loaded    map[string]*Level
	failed    map[string]bool
	requested []string
}

var _ sim.MapSource = (*Library)(nil)

// NewLibrary indexes the levels visible to loader.
func NewLibrary(loader *Loader) (*Library, error) {
	ids, err := loader.ListIDs()
	if err != nil {
		return nil, err
	}
	lib := &Library{
		loader: loader,
		ids:    ids,
		known:  make(map[string]bool, len(ids)),
		loaded: make(map[string]*Level),
		failed: make(map[string]bool),
	}
	for _, id := range ids {
		lib.known[id] = true
	}
	return lib, nil
}

// MapList returns the level ids in play order.
func (l *Library) MapList() []string {
	return l.ids
}

// Map returns the named level if it is loaded.
func (l *Library) Map(name string) (sim.Map, sim.MapStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lvl, ok := l.loaded[name]; ok {
		return lvl, sim.MapReady
	}
	if !l.known[name] || l.failed[name] {
		return nil, sim.MapNotFound
	}
	for _, r := range l.requested {
		if r == name {
			return nil, sim.MapPending
		}
	}
	l.requested = append(l.requested, name)
	return nil, sim.MapPending
}

// Pending reports whether any level is waiting to be loaded.
func (l *Library) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requested) > 0
}

// LoadPending reads every requested level. Errors of individual levels are
// joined; the remaining levels are still loaded.
func (l *Library) LoadPending(ctx context.Context) error {
	l.mu.Lock()
	requested := l.requested
	l.requested = nil
	l.mu.Unlock()

	var errs []error
	for _, name := range requested {
		if err := l.load(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Level loads the named level immediately.
func (l *Library) Level(ctx context.Context, name string) (*Level, error) {
	l.mu.Lock()
	lvl, ok := l.loaded[name]
	l.mu.Unlock()
	if ok {
		return lvl, nil
	}
	if err := l.load(ctx, name); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded[name], nil
}

func (l *Library) load(ctx context.Context, name string) error {
	_, span := telemetry.Tracer("levels").Start(ctx, "level.load")
	defer span.End()
	span.SetAttributes(attribute.String("level.id", name))

	lvl, err := l.loader.LoadByID(name)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.failed[name] = true
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return err
	}
	l.loaded[name] = lvl
	span.SetAttributes(
		attribute.Int("level.width", lvl.Width()),
		attribute.Int("level.height", lvl.Height()),
	)
	return nil
}
