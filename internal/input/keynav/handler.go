// Package keynav moves the selection focus with the keyboard: plain
// arrow steps, Shift range extension from the anchor, and Ctrl/Cmd
// block jumps to the next data boundary, the way spreadsheets do.
package keynav

import (
	"sync"

	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
	"github.com/gabrielmiguelok/gridselect/internal/input/key"
	"github.com/gabrielmiguelok/gridselect/internal/selection"
)

// defaultPageRows is used for PageUp/PageDown when the viewport has no
// usable height yet.
const defaultPageRows = 10

// Handler processes key events and drives the selection state.
type Handler struct {
	mu       sync.Mutex
	provider grid.Provider
	oracle   *geometry.Oracle
	state    *selection.State
}

// NewHandler creates a keyboard navigation handler.
func NewHandler(provider grid.Provider, oracle *geometry.Oracle, state *selection.State) *Handler {
	return &Handler{provider: provider, oracle: oracle, state: state}
}

// Handle processes one key event. It returns true when the event was
// consumed, so the host can suppress its default scrolling behavior for
// navigation keys while the grid has input focus.
func (h *Handler) Handle(ev key.Event) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ev.Key == key.KeyEscape && ev.Modifiers.IsEmpty() {
		h.state.Clear()
		return true
	}
	if !isNavKey(ev.Key) {
		return false
	}

	snap := h.provider.Snapshot()
	if snap.RowCount() == 0 || snap.ColCount() == 0 {
		return true
	}

	// Without an established focus every navigation key is a no-op;
	// a click or default focus must come first.
	focus, ok := h.state.Focus()
	if !ok {
		return true
	}

	newFocus := h.target(snap, focus, ev)

	if ev.Modifiers.HasShift() {
		anchor, ok := h.state.Anchor()
		if !ok {
			// First Shift-move from an un-anchored position starts the
			// range where the user currently stands.
			anchor = focus
		}
		h.state.SetRange(anchor, newFocus)
	} else {
		// The anchor tracks the focus when not extending.
		h.state.SetActiveCell(newFocus)
	}

	// Best-effort reveal; the viewport computes the minimal scroll.
	h.oracle.ScrollCellIntoView(newFocus)
	return true
}

// target computes where the focus lands for one key press.
func (h *Handler) target(snap *grid.Snapshot, focus grid.Coord, ev key.Event) grid.Coord {
	rows, cols := snap.RowCount(), snap.ColCount()
	jumpMod := ev.Modifiers.HasBlockJump()

	switch ev.Key {
	case key.KeyHome:
		if jumpMod {
			return grid.Coord{}
		}
		return grid.Coord{Row: focus.Row, Col: 0}

	case key.KeyEnd:
		if jumpMod {
			return grid.Coord{Row: rows - 1, Col: cols - 1}
		}
		return grid.Coord{Row: focus.Row, Col: cols - 1}

	case key.KeyPageUp:
		return focus.Add(-h.pageRows(), 0).Clamp(rows, cols)

	case key.KeyPageDown:
		return focus.Add(h.pageRows(), 0).Clamp(rows, cols)
	}

	dRow, dCol := ev.Key.Delta()
	if !jumpMod {
		return focus.Add(dRow, dCol).Clamp(rows, cols)
	}

	landing, jumped := blockJump(snap, focus, dRow, dCol)
	if landing.Equals(focus) {
		// Immediately blocked: fall back to a plain single step.
		return focus.Add(dRow, dCol).Clamp(rows, cols)
	}
	if jumped && ev.Modifiers.HasShift() {
		// Ctrl+Shift selects one cell past the detected block edge.
		return landing.Add(dRow, dCol).Clamp(rows, cols)
	}
	return landing
}

// blockJump walks from the focus one step at a time in the given
// direction and returns where the walk lands.
//
// Starting on an empty cell it skips the empty run and lands on the
// first non-empty cell; if the run reaches the grid boundary it lands
// there, but that counts as "no jump" (jumped=false) so Ctrl+Shift takes
// no extra step. Starting on a non-empty cell it runs to the last
// non-empty cell before the next empty one, or to the boundary; any net
// movement counts as a jump.
func blockJump(snap *grid.Snapshot, from grid.Coord, dRow, dCol int) (grid.Coord, bool) {
	cur := from
	startEmpty := snap.ValueEmpty(from)
	foundData := false

	for {
		next := cur.Add(dRow, dCol)
		if !snap.Contains(next) {
			break
		}
		if startEmpty {
			cur = next
			if !snap.ValueEmpty(next) {
				foundData = true
				break
			}
		} else {
			if snap.ValueEmpty(next) {
				break
			}
			cur = next
		}
	}

	jumped := !cur.Equals(from)
	if startEmpty && !foundData {
		jumped = false
	}
	return cur, jumped
}

// pageRows returns how many rows one PageUp/PageDown moves.
func (h *Handler) pageRows() int {
	_, height := h.oracle.Viewport().Size()
	rowHeight := h.oracle.Layout().RowHeight()
	if height <= 0 || rowHeight <= 0 {
		return defaultPageRows
	}
	rows := height / rowHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// isNavKey reports whether the key participates in grid navigation.
func isNavKey(k key.Key) bool {
	if k.IsArrow() {
		return true
	}
	switch k {
	case key.KeyHome, key.KeyEnd, key.KeyPageUp, key.KeyPageDown:
		return true
	default:
		return false
	}
}
