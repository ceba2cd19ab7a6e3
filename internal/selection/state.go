package selection

import (
	"sort"
	"sync"

	"github.com/gabrielmiguelok/gridselect/internal/event"
	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
)

// eventSource identifies this package on the bus.
const eventSource = "selection"

// State is the authoritative selection data for one grid view.
// All mutation goes through its setters; readers get copies.
type State struct {
	mu       sync.Mutex
	provider grid.Provider
	bus      *event.Bus

	anchor *grid.Coord
	focus  *grid.Coord
	cells  map[grid.CellRef]struct{}

	// published is the set as of the last selection.changed event,
	// kept for order-independent de-duplication.
	published map[grid.CellRef]struct{}

	dragRect *geometry.Rect
	dragging bool
}

// NewState creates an empty selection state. The bus may be nil, in
// which case no notifications are published.
func NewState(provider grid.Provider, bus *event.Bus) *State {
	return &State{
		provider:  provider,
		bus:       bus,
		cells:     make(map[grid.CellRef]struct{}),
		published: make(map[grid.CellRef]struct{}),
	}
}

// Anchor returns the fixed end of the current range, if any.
func (s *State) Anchor() (grid.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.anchor == nil {
		return grid.Coord{}, false
	}
	return *s.anchor, true
}

// Focus returns the movable end of the current range, if any.
func (s *State) Focus() (grid.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focus == nil {
		return grid.Coord{}, false
	}
	return *s.focus, true
}

// Cells returns the committed selection sorted by (RowID, ColumnID).
func (s *State) Cells() []grid.CellRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedRefs(s.cells)
}

// Count returns the number of selected cells.
func (s *State) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cells)
}

// Contains reports whether the reference is currently selected.
func (s *State) Contains(ref grid.CellRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cells[ref]
	return ok
}

// IsDragging returns true strictly between drag start and drag end.
func (s *State) IsDragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging
}

// DragRect returns the live marquee rectangle, if a drag is in progress.
func (s *State) DragRect() (geometry.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dragRect == nil {
		return geometry.Rect{}, false
	}
	return *s.dragRect, true
}

// SetActiveCell collapses the selection to the single cell at the
// coordinate and moves both anchor and focus there. Out-of-bounds
// coordinates are ignored.
func (s *State) SetActiveCell(c grid.Coord) {
	snap := s.provider.Snapshot()
	ref, ok := snap.RefAt(c)
	if !ok {
		return
	}

	s.mu.Lock()
	s.setAnchorFocusLocked(c, c)
	changed := s.replaceCellsLocked([]grid.CellRef{ref})
	payload := s.publishableLocked(changed)
	s.mu.Unlock()

	s.notify(payload, changed)
}

// SetRange selects the inclusive rectangle between anchor and head,
// resolved against the current snapshot. Both ends are clamped to the
// grid bounds; on an empty grid this is a no-op.
func (s *State) SetRange(anchor, head grid.Coord) {
	snap := s.provider.Snapshot()
	if snap.RowCount() == 0 || snap.ColCount() == 0 {
		return
	}
	r := grid.NewRange(anchor, head).Clamp(snap.RowCount(), snap.ColCount())

	s.mu.Lock()
	s.setAnchorFocusLocked(r.Anchor, r.Head)
	changed := s.replaceCellsLocked(r.Cells(snap))
	payload := s.publishableLocked(changed)
	s.mu.Unlock()

	s.notify(payload, changed)
}

// ExtendTo moves the focus to the coordinate and selects the rectangle
// from the existing anchor. Without an anchor it behaves as SetActiveCell.
func (s *State) ExtendTo(head grid.Coord) {
	s.mu.Lock()
	anchor := s.anchor
	s.mu.Unlock()

	if anchor == nil {
		s.SetActiveCell(head)
		return
	}
	s.SetRange(*anchor, head)
}

// SelectRow selects every visible cell of the row at the given index.
// Anchor lands on the row's first cell, focus on its last.
func (s *State) SelectRow(row int) {
	snap := s.provider.Snapshot()
	if row < 0 || row >= snap.RowCount() || snap.ColCount() == 0 {
		return
	}
	s.SetRange(grid.Coord{Row: row, Col: 0}, grid.Coord{Row: row, Col: snap.ColCount() - 1})
}

// SelectColumn selects every visible cell of the column at the given index.
func (s *State) SelectColumn(col int) {
	snap := s.provider.Snapshot()
	if col < 0 || col >= snap.ColCount() || snap.RowCount() == 0 {
		return
	}
	s.SetRange(grid.Coord{Row: 0, Col: col}, grid.Coord{Row: snap.RowCount() - 1, Col: col})
}

// SelectAll selects every visible cell.
func (s *State) SelectAll() {
	snap := s.provider.Snapshot()
	if snap.RowCount() == 0 || snap.ColCount() == 0 {
		return
	}
	s.SetRange(grid.Coord{}, grid.Coord{Row: snap.RowCount() - 1, Col: snap.ColCount() - 1})
}

// Clear empties the selection and unsets anchor and focus.
func (s *State) Clear() {
	s.mu.Lock()
	s.anchor = nil
	s.focus = nil
	changed := s.replaceCellsLocked(nil)
	payload := s.publishableLocked(changed)
	s.mu.Unlock()

	s.notify(payload, changed)
}

// StartDrag marks the beginning of a marquee drag episode. The anchor
// and focus stay at the press cell; only the rectangle drives the set
// from here until EndDrag.
func (s *State) StartDrag(origin grid.Coord) {
	s.mu.Lock()
	if s.dragging {
		s.mu.Unlock()
		return
	}
	s.dragging = true
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.New(event.TopicDragStarted, event.DragStarted{Origin: origin}, eventSource))
	}
}

// UpdateDrag stores the live marquee rectangle and replaces the
// committed set with the cells the rectangle currently touches.
// Full replacement, not a merge: the selection is exactly whatever is
// under the marquee.
func (s *State) UpdateDrag(rect geometry.Rect, cells []grid.CellRef) {
	s.mu.Lock()
	if !s.dragging {
		s.mu.Unlock()
		return
	}
	s.dragRect = &rect
	changed := s.replaceCellsLocked(cells)
	payload := s.publishableLocked(changed)
	s.mu.Unlock()

	s.notify(payload, changed)
}

// EndDrag clears the marquee rectangle and ends the drag episode.
// The committed set stays as the last UpdateDrag left it.
func (s *State) EndDrag() {
	s.mu.Lock()
	if !s.dragging {
		s.mu.Unlock()
		return
	}
	s.dragging = false
	s.dragRect = nil
	final := sortedRefs(s.cells)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.New(event.TopicDragEnded, event.DragEnded{Cells: final}, eventSource))
	}
}

// setAnchorFocusLocked sets both ends, preserving the both-or-neither
// invariant.
func (s *State) setAnchorFocusLocked(anchor, focus grid.Coord) {
	a, f := anchor, focus
	s.anchor = &a
	s.focus = &f
}

// replaceCellsLocked swaps the committed set and reports whether it
// differs from the last published set.
func (s *State) replaceCellsLocked(refs []grid.CellRef) bool {
	next := make(map[grid.CellRef]struct{}, len(refs))
	for _, ref := range refs {
		next[ref] = struct{}{}
	}
	s.cells = next
	return !refSetsEqual(s.cells, s.published)
}

// publishableLocked records the set as published and returns the sorted
// payload, when a change is pending.
func (s *State) publishableLocked(changed bool) []grid.CellRef {
	if !changed {
		return nil
	}
	s.published = make(map[grid.CellRef]struct{}, len(s.cells))
	for ref := range s.cells {
		s.published[ref] = struct{}{}
	}
	return sortedRefs(s.cells)
}

// notify publishes selection.changed outside the state lock.
func (s *State) notify(payload []grid.CellRef, changed bool) {
	if !changed || s.bus == nil {
		return
	}
	s.bus.Publish(event.New(event.TopicSelectionChanged, event.SelectionChanged{Cells: payload}, eventSource))
}

// refSetsEqual is order-independent set equality over (RowID, ColumnID).
func refSetsEqual(a, b map[grid.CellRef]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for ref := range a {
		if _, ok := b[ref]; !ok {
			return false
		}
	}
	return true
}

// sortedRefs copies a set into a slice sorted by row id, then column id.
func sortedRefs(set map[grid.CellRef]struct{}) []grid.CellRef {
	refs := make([]grid.CellRef, 0, len(set))
	for ref := range set {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Row != refs[j].Row {
			return refs[i].Row < refs[j].Row
		}
		return refs[i].Col < refs[j].Col
	})
	return refs
}
