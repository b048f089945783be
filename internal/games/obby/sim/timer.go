package sim

import "github.com/vovakirdan/tui-obby/internal/core"

// Timer counts down seconds. The zero value is an elapsed timer.
type Timer struct {
	Sec      float32
	StartSec float32
}

// Start arms the timer with sec seconds.
func (t *Timer) Start(sec float32) {
	t.Sec = sec
	t.StartSec = sec
}

// Alpha returns the elapsed fraction in [0, 1].
func (t Timer) Alpha() float32 {
	if t.StartSec <= 0 {
		return 1
	}
	return core.ClampF((t.StartSec-t.Sec)/t.StartSec, 0, 1)
}

// Tick advances the timer by dt and reports true exactly once, on the tick it
// reaches zero. An already elapsed timer never fires again until started anew.
func (t *Timer) Tick(dt float32) bool {
	if t.Sec == 0 {
		return false
	}
	t.Sec -= dt
	if t.Sec <= 0 {
		t.Sec = 0
		return true
	}
	return false
}
