package filters

import (
	"sync"
	"time"
)

// DefaultDebounce is the pause after the last keystroke before a search term
// is applied.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs at most one pending call after a quiet period. Scheduling a
// new call cancels the previous one.
//
//	d := filters.NewDebouncer(0)
//	for term := range keystrokes {
//	    d.Schedule(func() { store.SetUserSearchTerm(term) })
//	}
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
	seq     uint64
}

// NewDebouncer creates a debouncer. A non-positive delay selects
// DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule replaces any pending call with fn, to run once the delay elapses
// without another Schedule. The returned function cancels fn if it has not
// run yet and has no effect on later calls.
func (d *Debouncer) Schedule(fn func()) (cancel func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	token := d.seq
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(token) })

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.seq == token {
			d.stopLocked()
		}
	}
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Flush runs the pending call immediately on the calling goroutine. It
// reports whether there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.stopLocked()
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) fire(token uint64) {
	d.mu.Lock()
	// A timer that lost the race with Schedule or Cancel must not run.
	if d.seq != token || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// stopLocked clears the pending call and invalidates its timer.
func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.seq++
}
