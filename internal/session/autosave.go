package session

import (
	"sync"
	"time"
)

// Autosaver coalesces bursts of answer mutations into a single flush: each
// Schedule resets the quiet-period timer, and flush runs only after the delay
// elapses with no further calls.
type Autosaver struct {
	mu      sync.Mutex
	delay   time.Duration
	flush   func()
	timer   *time.Timer
	stopped bool
}

func NewAutosaver(delay time.Duration, flush func()) *Autosaver {
	return &Autosaver{delay: delay, flush: flush}
}

// Schedule arms (or re-arms) the debounce timer.
func (a *Autosaver) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.flush)
}

// Cancel drops a pending flush without disabling the autosaver. Used before
// the final submit so a stale flush cannot overwrite the completed record.
func (a *Autosaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Stop cancels any pending flush and rejects future Schedule calls.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
