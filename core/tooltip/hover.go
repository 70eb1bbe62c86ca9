package tooltip

import (
	"sync"
	"time"
)

// HoverDelay is how long the pointer must rest on a header before its tooltip shows.
const HoverDelay = 300 * time.Millisecond

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. It exists so tests can drive time by hand.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Hover owns the hover timer of one grid header row. At most one timer is
// pending at a time; Leave, Cancel and Close always stop it.
type Hover struct {
	mu      sync.Mutex
	clock   Clock
	timer   Timer
	seq     uint64
	visible string
	closed  bool
	show    func(key, text string)
}

// NewHover creates a hover controller that calls show once the delay elapses.
// A nil clock uses the wall clock.
func NewHover(clock Clock, show func(key, text string)) *Hover {
	if clock == nil {
		clock = realClock{}
	}
	return &Hover{clock: clock, show: show}
}

// Enter starts the delay for a header. Headers without a tooltip schedule nothing.
func (h *Hover) Enter(title, key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.stopLocked()
	text, ok := Resolve(title, key)
	if !ok {
		return
	}
	h.seq++
	seq := h.seq
	h.timer = h.clock.AfterFunc(HoverDelay, func() {
		h.fire(seq, key, text)
	})
}

// Leave cancels a pending tooltip and hides a visible one.
func (h *Hover) Leave() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

// Cancel is Leave under another name, called when a sort interaction starts.
func (h *Hover) Cancel() { h.Leave() }

// Close tears the controller down; later calls to Enter are ignored.
func (h *Hover) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
	h.closed = true
}

// Visible returns the key of the header whose tooltip is showing.
func (h *Hover) Visible() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible, h.visible != ""
}

// Pending reports whether a tooltip timer is scheduled.
func (h *Hover) Pending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.timer != nil
}

func (h *Hover) fire(seq uint64, key, text string) {
	h.mu.Lock()
	if h.closed || seq != h.seq || h.timer == nil {
		h.mu.Unlock()
		return
	}
	h.timer = nil
	h.visible = key
	show := h.show
	h.mu.Unlock()
	if show != nil {
		show(key, text)
	}
}

// stopLocked stops any pending timer and invalidates in-flight callbacks.
func (h *Hover) stopLocked() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.seq++
	h.visible = ""
}
