package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRegistry tracks how many drag listeners are attached.
type countingRegistry struct {
	active   int
	acquired int
}

func (r *countingRegistry) Acquire() func() {
	r.active++
	r.acquired++
	return func() { r.active-- }
}

func testColumns() []Column {
	return []Column{
		{Key: "name", Title: "Player", Width: 120},
		{Key: "HR", Title: "HR", Width: 40},
		{Key: "tiny", Title: "T", Width: 10},
		{Key: "auto", Title: "A"},
	}
}

func TestNewNegotiatorWidths(t *testing.T) {
	n := NewNegotiator(testColumns(), nil)
	assert.Equal(t, 120, n.Width("name"))
	assert.Equal(t, MinColumnWidth, n.Width("tiny"), "initial widths are clamped")
	assert.Equal(t, DefaultColumnWidth, n.Width("auto"))
}

func TestDragResize(t *testing.T) {
	reg := &countingRegistry{}
	n := NewNegotiator(testColumns(), reg)

	require.NoError(t, n.PointerDown("HR", 200))
	col, resizing := n.Resizing()
	assert.True(t, resizing)
	assert.Equal(t, "HR", col)
	assert.Equal(t, 1, reg.active)

	w, err := n.PointerMove(230)
	require.NoError(t, err)
	assert.Equal(t, 70, w)

	// Deltas are measured from the drag start, not the previous move.
	w, err = n.PointerMove(210)
	require.NoError(t, err)
	assert.Equal(t, 50, w)

	w, err = n.PointerMove(0)
	require.NoError(t, err)
	assert.Equal(t, MinColumnWidth, w)

	require.NoError(t, n.PointerUp())
	_, resizing = n.Resizing()
	assert.False(t, resizing)
	assert.Equal(t, 0, reg.active, "listeners are released on pointer up")
	assert.Equal(t, MinColumnWidth, n.Width("HR"))
	assert.Equal(t, 120, n.Width("name"), "other columns are untouched")
}

func TestResizeStateErrors(t *testing.T) {
	reg := &countingRegistry{}
	n := NewNegotiator(testColumns(), reg)

	_, err := n.PointerMove(10)
	assert.ErrorIs(t, err, ErrNotResizing)
	assert.ErrorIs(t, n.PointerUp(), ErrNotResizing)
	assert.ErrorIs(t, n.PointerDown("missing", 0), ErrUnknownColumn)

	require.NoError(t, n.PointerDown("name", 0))
	assert.ErrorIs(t, n.PointerDown("HR", 0), ErrResizeInProgress)
	assert.Equal(t, 1, reg.acquired, "a rejected drag attaches no listeners")
	require.NoError(t, n.PointerUp())
}

func TestSetWidth(t *testing.T) {
	n := NewNegotiator(testColumns(), nil)

	w, err := n.SetWidth("HR", 80)
	require.NoError(t, err)
	assert.Equal(t, 80, w)

	w, err = n.SetWidth("HR", -5)
	require.NoError(t, err)
	assert.Equal(t, MinColumnWidth, w)

	_, err = n.SetWidth("missing", 50)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, 25, ClampWidth(0))
	assert.Equal(t, 25, ClampWidth(25))
	assert.Equal(t, 26, ClampWidth(26))
}
