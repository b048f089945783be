package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// Player mixes event sounds into the speaker. The zero value is a muted
// player; Play on it is a no-op.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

var initSpeaker = speaker.Init

// NewPlayer opens the default audio device.
func NewPlayer() (*Player, error) {
	if err := initSpeaker(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sfx: cannot open speaker: %w", err)
	}
	p := &Player{mixer: &beep.Mixer{}, enabled: true}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the sound of every event.
func (p *Player) Play(events []core.Event) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	var streams []beep.Streamer
	for _, ev := range events {
		if s := Effect(ev.Kind); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(streams...)
	speaker.Unlock()
}

// Close silences the player.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
