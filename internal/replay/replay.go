// Package replay records the input of a run and plays it back headlessly.
// Recordings are msgpack encoded; identical consecutive frames are stored
// once with a repeat count.
package replay

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vovakirdan/tui-obby/internal/core"
	"github.com/vovakirdan/tui-obby/internal/registry"
	"github.com/vovakirdan/tui-obby/internal/telemetry"
)

// FormatVersion is written into every recording.
const FormatVersion = 1

// Header describes how a recording was made.
type Header struct {
	Version    int       `msgpack:"v"`
	GameID     string    `msgpack:"game"`
	TickRate   int       `msgpack:"rate"`
	Skin       int       `msgpack:"skin"`
	Difficulty string    `msgpack:"difficulty,omitempty"`
	LevelsDir  string    `msgpack:"levels,omitempty"`
	ConfigPath string    `msgpack:"config,omitempty"`
	RecordedAt time.Time `msgpack:"at"`
}

// Frame is the input of one tick, repeated Repeat+1 times.
type Frame struct {
	Pressed []core.Action `msgpack:"p,omitempty"`
	Down    []core.Action `msgpack:"d,omitempty"`
	Repeat  int           `msgpack:"n,omitempty"`
}

// Input rebuilds the input frame.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range f.Down {
		in.Hold(a)
	}
	for _, a := range f.Pressed {
		in.Set(a)
	}
	return in
}

func (f Frame) sameInput(o Frame) bool {
	return slices.Equal(f.Pressed, o.Pressed) && slices.Equal(f.Down, o.Down)
}

// Recording is a header plus the input of every tick.
type Recording struct {
	Header Header  `msgpack:"h"`
	Frames []Frame `msgpack:"f"`
}

// New starts an empty recording.
func New(h Header) *Recording {
	h.Version = FormatVersion
	if h.RecordedAt.IsZero() {
		h.RecordedAt = time.Now().UTC()
	}
	return &Recording{Header: h}
}

// Add appends the input of one tick.
func (r *Recording) Add(in core.InputFrame) {
	f := Frame{Pressed: actions(in.Pressed), Down: actions(in.Down)}
	if n := len(r.Frames); n > 0 && r.Frames[n-1].sameInput(f) {
		r.Frames[n-1].Repeat++
		return
	}
	r.Frames = append(r.Frames, f)
}

// Ticks returns the number of recorded ticks.
func (r *Recording) Ticks() int {
	n := 0
	for _, f := range r.Frames {
		n += f.Repeat + 1
	}
	return n
}

// actions returns the set actions in ascending order.
func actions(m map[core.Action]bool) []core.Action {
	var out []core.Action
	for a, on := range m {
		if on {
			out = append(out, a)
		}
	}
	slices.Sort(out)
	return out
}

// Encode writes the recording to w.
func Encode(w io.Writer, r *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a recording from rd.
func Decode(rd io.Reader) (*Recording, error) {
	var r Recording
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if r.Header.Version != FormatVersion {
		return nil, fmt.Errorf("replay: unsupported version %d", r.Header.Version)
	}
	return &r, nil
}

// Save writes the recording to a file.
func Save(path string, r *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: cannot create %s: %w", path, err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from a file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Result summarizes a playback.
type Result struct {
	Ticks  int
	State  core.GameState
	Events map[core.EventKind]int
}

// Play resets g and feeds it the recorded input. Playback stops early at
// game over or when ctx is done.
func Play(ctx context.Context, r *Recording, g registry.Game) (Result, error) {
	ctx, span := telemetry.Tracer("replay").Start(ctx, "replay.play")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", r.Header.GameID),
		attribute.Int("replay.ticks", r.Ticks()),
	)

	if g.ID() != r.Header.GameID {
		return Result{}, fmt.Errorf("replay: recorded %q, got game %q", r.Header.GameID, g.ID())
	}

	cfg := core.DefaultConfig()
	if r.Header.TickRate > 0 {
		cfg.TickRate = r.Header.TickRate
	}
	g.Reset(cfg)

	res := Result{State: g.State(), Events: make(map[core.EventKind]int)}
	for _, f := range r.Frames {
		in := f.Input()
		for range f.Repeat + 1 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			step := g.Step(in)
			res.Ticks++
			res.State = step.State
			for _, ev := range step.Events {
				res.Events[ev.Kind]++
			}
			if step.State.GameOver {
				span.SetAttributes(attribute.Int("replay.score", res.State.Score))
				return res, nil
			}
		}
	}
	span.SetAttributes(attribute.Int("replay.score", res.State.Score))
	return res, nil
}
