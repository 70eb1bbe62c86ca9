package tooltip

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

// manualClock only advances when told to.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && t.at <= c.now {
			t.stopped = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

type shown struct{ key, text string }

func newTestHover() (*Hover, *manualClock, *[]shown) {
	clock := &manualClock{}
	var got []shown
	h := NewHover(clock, func(key, text string) { got = append(got, shown{key, text}) })
	return h, clock, &got
}

func TestHoverShowsAfterDelay(t *testing.T) {
	h, clock, got := newTestHover()

	h.Enter("HR", "HR")
	assert.True(t, h.Pending())

	clock.Advance(HoverDelay - time.Millisecond)
	assert.Empty(t, *got)

	clock.Advance(time.Millisecond)
	require.Len(t, *got, 1)
	assert.Equal(t, shown{"HR", "Home Runs"}, (*got)[0])
	assert.False(t, h.Pending())
	key, ok := h.Visible()
	assert.True(t, ok)
	assert.Equal(t, "HR", key)
}

func TestHoverLeaveBeforeDelay(t *testing.T) {
	h, clock, got := newTestHover()

	h.Enter("HR", "HR")
	clock.Advance(100 * time.Millisecond)
	h.Leave()
	clock.Advance(time.Second)

	assert.Empty(t, *got)
	assert.False(t, h.Pending())
}

func TestHoverLeaveHidesVisible(t *testing.T) {
	h, clock, _ := newTestHover()
	h.Enter("HR", "HR")
	clock.Advance(HoverDelay)
	h.Leave()
	_, ok := h.Visible()
	assert.False(t, ok)
}

func TestHoverReenterRestartsDelay(t *testing.T) {
	h, clock, got := newTestHover()

	h.Enter("HR", "HR")
	clock.Advance(200 * time.Millisecond)
	h.Enter("G", "G")
	clock.Advance(200 * time.Millisecond)
	assert.Empty(t, *got, "the first timer was replaced")

	clock.Advance(100 * time.Millisecond)
	require.Len(t, *got, 1)
	assert.Equal(t, "G", (*got)[0].key)
}

func TestHoverCancelOnSort(t *testing.T) {
	h, clock, got := newTestHover()
	h.Enter("AVG", "AVG")
	h.Cancel()
	clock.Advance(time.Second)
	assert.Empty(t, *got)
}

func TestHoverWithoutDescription(t *testing.T) {
	h, clock, got := newTestHover()
	h.Enter("XYZ", "xyz")
	assert.False(t, h.Pending())
	clock.Advance(time.Second)
	assert.Empty(t, *got)
}

func TestHoverClose(t *testing.T) {
	h, clock, got := newTestHover()
	h.Enter("HR", "HR")
	h.Close()
	clock.Advance(time.Second)
	assert.Empty(t, *got)

	h.Enter("HR", "HR")
	assert.False(t, h.Pending(), "a closed hover ignores Enter")
}

func TestHoverRealClock(t *testing.T) {
	done := make(chan shown, 1)
	h := NewHover(nil, func(key, text string) { done <- shown{key, text} })
	defer h.Close()

	h.Enter("ERA", "ERA")
	select {
	case s := <-done:
		assert.Equal(t, "ERA", s.key)
	case <-time.After(5 * time.Second):
		t.Fatal("tooltip never fired")
	}
}
