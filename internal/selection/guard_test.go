package selection

import (
	"testing"

	"github.com/gabrielmiguelok/gridselect/internal/event"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
)

func TestGuardDropsStaleRows(t *testing.T) {
	state, store, changes := newTestState(4, 3)
	guard := NewGuard(state)

	state.SetRange(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 3, Col: 2})
	before := *changes

	// Page away rows 2 and 3.
	next := selSnapshot(2, 3)
	store.Replace(next)
	guard.Revalidate(next)

	if state.Count() != 6 {
		t.Errorf("Count = %d, want 6 (rows 0-1 survive)", state.Count())
	}
	if state.Contains(ref(3, 0)) {
		t.Error("stale reference row-3/col-0 survived revalidation")
	}
	if _, ok := state.Anchor(); ok {
		t.Error("anchor should be unset after dropping entries")
	}
	if _, ok := state.Focus(); ok {
		t.Error("focus should be unset after dropping entries")
	}
	if *changes != before+1 {
		t.Errorf("published %d extra changes, want 1", *changes-before)
	}
}

func TestGuardDropsStaleColumns(t *testing.T) {
	state, _, _ := newTestState(3, 4)
	guard := NewGuard(state)

	state.SelectRow(1)

	// Hide the last two columns.
	next := selSnapshot(3, 2)
	guard.Revalidate(next)

	if state.Count() != 2 {
		t.Errorf("Count = %d, want 2", state.Count())
	}
	if state.Contains(ref(1, 3)) {
		t.Error("stale column reference survived")
	}
}

func TestGuardClearsOnEmptySnapshot(t *testing.T) {
	state, _, _ := newTestState(3, 3)
	guard := NewGuard(state)

	state.SelectAll()
	guard.Revalidate(selSnapshot(0, 0))

	if state.Count() != 0 {
		t.Errorf("Count = %d, want 0 on empty grid", state.Count())
	}
	if _, ok := state.Anchor(); ok {
		t.Error("anchor should be unset on empty grid")
	}
}

func TestGuardNoOpWhenNothingStale(t *testing.T) {
	state, _, changes := newTestState(4, 4)
	guard := NewGuard(state)

	state.SetRange(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 1})
	anchorBefore, _ := state.Anchor()
	before := *changes

	guard.Revalidate(selSnapshot(4, 4))

	if *changes != before {
		t.Errorf("published %d extra changes for a clean snapshot", *changes-before)
	}
	anchorAfter, ok := state.Anchor()
	if !ok || !anchorAfter.Equals(anchorBefore) {
		t.Error("anchor disturbed by a clean revalidation")
	}
}

func TestGuardNoOpOnEmptySelection(t *testing.T) {
	state, _, changes := newTestState(3, 3)
	guard := NewGuard(state)

	guard.Revalidate(selSnapshot(0, 0))

	if *changes != 0 {
		t.Errorf("published %d changes with nothing selected", *changes)
	}
}

// The guard is commonly subscribed to selection changes; correcting the
// set fires another change, and the re-entrant run must terminate.
func TestGuardTerminatesWhenSubscribed(t *testing.T) {
	state, store, _ := newTestState(4, 3)
	guard := NewGuard(state)

	runs := 0
	_, _ = state.bus.Subscribe(event.TopicSelectionChanged, func(event.Event) {
		runs++
		if runs > 10 {
			t.Fatal("guard subscription did not settle")
		}
		guard.Revalidate(store.Snapshot())
	})

	state.SelectAll()
	next := selSnapshot(2, 3)
	store.Replace(next)
	guard.Revalidate(next)

	if state.Count() != 6 {
		t.Errorf("Count = %d, want 6", state.Count())
	}
}
