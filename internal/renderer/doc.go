// Package renderer draws the grid and its selection onto a tcell
// terminal screen and translates raw tcell input events into the
// engine's pointer and key events.
//
// The renderer is a read-only consumer of the selection state: it asks
// which cells are selected, where the focus is, and whether a marquee
// rectangle is live, and paints accordingly. It never mutates state.
package renderer
