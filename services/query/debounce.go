package query

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of filter changes into a single trailing
// refetch, so free-text search does not issue one request per keystroke.
// Safe for concurrent use.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the configured delay, replacing any previously
// scheduled call that has not fired yet. Only the last fn of a burst runs.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call. Used when the owning screen unmounts so a
// stale refetch never fires against a disposed view.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
