package list

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period applied to keystroke-driven search.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer delays a call until no new trigger has arrived for the
// configured duration. Only the trailing call runs; re-triggering within
// the window replaces the pending call, and Stop cancels it outright.
// Debouncing cancels timers, not in-flight requests — once a fetch has
// been issued it runs to completion and is fenced by the controller.
type Debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
}

// NewDebouncer builds a debouncer with the given quiet period.
// A non-positive duration falls back to DefaultDebounce.
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{d: d}
}

// Trigger schedules fn after the quiet period, replacing any pending call.
func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Stop cancels the pending call, if any. Safe to call repeatedly; the
// owning view must call it on unmount so a stale fetch is never issued.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
