// ABOUTME: Debouncer for search-as-you-type input
// ABOUTME: Rapid keystrokes reset the timer; only the last query runs
package search

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay used for live search input.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces rapid calls into one, executed after a quiet period.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a debouncer with the specified quiet period.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Debounce schedules fn after the quiet period. A newer call cancels any
// pending one, so only the most recent fn runs.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Immediate runs fn now and drops any pending call.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}
