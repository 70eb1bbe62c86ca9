package grid

import (
	"errors"
	"fmt"
)

// Errors returned by the resize state machine.
var (
	ErrResizeInProgress = errors.New("a column resize is already in progress")
	ErrNotResizing      = errors.New("no column resize in progress")
	ErrUnknownColumn    = errors.New("unknown column")
)

// ListenerRegistry hands out pointer-drag listeners. Acquire is called when a
// resize starts and the returned release func runs when it ends.
type ListenerRegistry interface {
	Acquire() (release func())
}

type noopRegistry struct{}

func (noopRegistry) Acquire() func() { return func() {} }

// resizeSession is the Resizing state: the column being dragged, where the drag
// started and the width it started at.
type resizeSession struct {
	column     string
	startX     int
	startWidth int
	release    func()
}

// Negotiator owns column widths and the Idle/Resizing state machine.
type Negotiator struct {
	widths   map[string]int
	registry ListenerRegistry
	active   *resizeSession // nil while Idle
}

// NewNegotiator seeds widths from the columns, clamped to the minimum.
func NewNegotiator(columns []Column, registry ListenerRegistry) *Negotiator {
	if registry == nil {
		registry = noopRegistry{}
	}
	n := &Negotiator{
		widths:   make(map[string]int, len(columns)),
		registry: registry,
	}
	for _, c := range columns {
		w := c.Width
		if w == 0 {
			w = DefaultColumnWidth
		}
		n.widths[c.Key] = ClampWidth(w)
	}
	return n
}

// Width returns the current width of a column.
func (n *Negotiator) Width(key string) int {
	return n.widths[key]
}

// SetWidth sets a column width directly, clamped to the minimum.
func (n *Negotiator) SetWidth(key string, width int) (int, error) {
	if _, ok := n.widths[key]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	n.widths[key] = ClampWidth(width)
	return n.widths[key], nil
}

// Resizing reports the column being resized, if any.
func (n *Negotiator) Resizing() (string, bool) {
	if n.active == nil {
		return "", false
	}
	return n.active.column, true
}

// PointerDown enters Resizing for a column at pointer position x.
func (n *Negotiator) PointerDown(key string, x int) error {
	if n.active != nil {
		return ErrResizeInProgress
	}
	w, ok := n.widths[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	n.active = &resizeSession{
		column:     key,
		startX:     x,
		startWidth: w,
		release:    n.registry.Acquire(),
	}
	return nil
}

// PointerMove recomputes the active column width as max(min, startWidth + dx).
func (n *Negotiator) PointerMove(x int) (int, error) {
	if n.active == nil {
		return 0, ErrNotResizing
	}
	w := ClampWidth(n.active.startWidth + (x - n.active.startX))
	n.widths[n.active.column] = w
	return w, nil
}

// PointerUp leaves Resizing and releases the drag listeners.
func (n *Negotiator) PointerUp() error {
	if n.active == nil {
		return ErrNotResizing
	}
	s := n.active
	n.active = nil
	if s.release != nil {
		s.release()
	}
	return nil
}
