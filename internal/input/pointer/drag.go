package pointer

import (
	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
)

// dragTracker tracks one press-to-release gesture.
type dragTracker struct {
	// active is true from an armed press until release.
	active bool

	// selecting is true once the gesture became a marquee drag.
	selecting bool

	// button is the button being held.
	button Button

	// pressContent is the press point in content coordinates; the
	// marquee rectangle is always spanned from here, so mid-drag
	// auto-scroll grows the rectangle instead of shifting it.
	pressContent geometry.Point

	// origin is the coordinate of the cell the press landed on.
	origin grid.Coord

	// lastRect is the most recent marquee rectangle, kept so release
	// can run its final intersection against it.
	lastRect geometry.Rect
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

// start arms the tracker at a press point.
func (t *dragTracker) start(pressContent geometry.Point, origin grid.Coord, button Button) {
	t.active = true
	t.selecting = false
	t.button = button
	t.pressContent = pressContent
	t.origin = origin
	t.lastRect = geometry.Rect{X: pressContent.X, Y: pressContent.Y}
}

// end clears all gesture state.
func (t *dragTracker) end() {
	t.active = false
	t.selecting = false
	t.button = ButtonNone
	t.pressContent = geometry.Point{}
	t.origin = grid.Coord{}
	t.lastRect = geometry.Rect{}
}

// isSelecting returns true if the gesture is an active marquee drag.
func (t *dragTracker) isSelecting() bool {
	return t.active && t.selecting
}
