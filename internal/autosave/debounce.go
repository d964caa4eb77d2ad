// Package autosave provides the debounced scheduling used around
// storage-writing handlers: auto-save, the pricing simulator, and the
// competitive analysis refresh. A new trigger cancels the pending one; there
// are no other cancellation semantics.
package autosave

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into one run after a quiet period.
// Safe for concurrent use. The zero value is not usable; construct with
// NewDebouncer.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run once the quiet period elapses, cancelling any
// previously scheduled run. fn runs on its own goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
