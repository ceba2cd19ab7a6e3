package keynav

import (
	"fmt"
	"testing"

	"github.com/gabrielmiguelok/gridselect/internal/event"
	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
	"github.com/gabrielmiguelok/gridselect/internal/input/key"
	"github.com/gabrielmiguelok/gridselect/internal/selection"
)

// newFixture wires a handler over a 10x3 grid with deliberate holes:
// column 0 is fully populated, column 1 is empty at rows 2 and 6, and
// column 2 is entirely empty. The viewport shows 4 rows.
func newFixture(t *testing.T) (*Handler, *selection.State, *geometry.Oracle) {
	t.Helper()
	emptyAt := map[int]bool{2: true, 6: true}

	var rr []grid.Row
	for i := 0; i < 10; i++ {
		rec := map[string]any{"f0": fmt.Sprintf("a%d", i)}
		if !emptyAt[i] {
			rec["f1"] = fmt.Sprintf("b%d", i)
		}
		rec["f2"] = ""
		rr = append(rr, grid.Row{ID: grid.RowID(fmt.Sprintf("row-%d", i)), Record: rec})
	}
	cc := []grid.Column{
		{ID: "col-0", Field: "f0", Title: "A"},
		{ID: "col-1", Field: "f1", Title: "B"},
		{ID: "col-2", Field: "f2", Title: "C"},
	}
	store := grid.NewStore(grid.NewSnapshot(rr, cc))

	oracle := geometry.NewOracle(store, geometry.DefaultLayoutConfig())
	oracle.Resize(17, 5)
	state := selection.NewState(store, event.NewBus())
	return NewHandler(store, oracle, state), state, oracle
}

func press(h *Handler, k key.Key, mods key.Modifier) bool {
	return h.Handle(key.Event{Key: k, Modifiers: mods})
}

func focusAt(t *testing.T, state *selection.State, want grid.Coord) {
	t.Helper()
	focus, ok := state.Focus()
	if !ok {
		t.Fatal("no focus")
	}
	if !focus.Equals(want) {
		t.Fatalf("focus = %v, want %v", focus, want)
	}
}

func TestArrowMovesActiveCell(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 2, Col: 1})

	if !press(h, key.KeyDown, key.ModNone) {
		t.Fatal("arrow not consumed")
	}

	focusAt(t, state, grid.Coord{Row: 3, Col: 1})
	anchor, _ := state.Anchor()
	if !anchor.Equals(grid.Coord{Row: 3, Col: 1}) {
		t.Errorf("anchor = %v, want to follow the focus", anchor)
	}
	if state.Count() != 1 {
		t.Errorf("Count = %d, want 1", state.Count())
	}
}

func TestArrowClampsAtBoundary(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{})

	press(h, key.KeyUp, key.ModNone)
	press(h, key.KeyLeft, key.ModNone)

	focusAt(t, state, grid.Coord{})
}

func TestShiftArrowExtendsFromAnchor(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 2, Col: 1})

	press(h, key.KeyDown, key.ModShift)
	press(h, key.KeyDown, key.ModShift)

	if state.Count() != 3 {
		t.Fatalf("Count = %d, want 3", state.Count())
	}
	anchor, _ := state.Anchor()
	if !anchor.Equals(grid.Coord{Row: 2, Col: 1}) {
		t.Errorf("anchor = %v, want fixed at (2,1)", anchor)
	}
	focusAt(t, state, grid.Coord{Row: 4, Col: 1})

	// A plain arrow collapses back to a single cell.
	press(h, key.KeyDown, key.ModNone)
	if state.Count() != 1 {
		t.Errorf("Count after plain arrow = %d, want 1", state.Count())
	}
	focusAt(t, state, grid.Coord{Row: 5, Col: 1})
}

func TestPlainArrowsThenShiftAnchorAtLastStop(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{})

	// Two plain steps drag the anchor along; Shift then extends from
	// wherever the focus last stood.
	press(h, key.KeyDown, key.ModNone)
	press(h, key.KeyDown, key.ModNone)
	press(h, key.KeyRight, key.ModShift)

	focusAt(t, state, grid.Coord{Row: 2, Col: 1})
	anchor, _ := state.Anchor()
	if !anchor.Equals(grid.Coord{Row: 2, Col: 0}) {
		t.Errorf("anchor = %v, want (2,0)", anchor)
	}
	if state.Count() != 2 {
		t.Errorf("Count = %d, want 2", state.Count())
	}
}

func TestBlockJumpStopsBeforeHole(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 0, Col: 1})

	// Data run 0-1, hole at 2: land on the last cell of the run.
	press(h, key.KeyDown, key.ModCtrl)
	focusAt(t, state, grid.Coord{Row: 1, Col: 1})
}

func TestBlockJumpFromHoleSkipsToData(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 2, Col: 1})

	press(h, key.KeyDown, key.ModCtrl)
	focusAt(t, state, grid.Coord{Row: 3, Col: 1})
}

func TestBlockJumpBlockedFallsBackToStep(t *testing.T) {
	h, state, _ := newFixture(t)
	// Row 5 is the end of its data run; row 6 is the hole.
	state.SetActiveCell(grid.Coord{Row: 5, Col: 1})

	press(h, key.KeyDown, key.ModCtrl)
	focusAt(t, state, grid.Coord{Row: 6, Col: 1})
}

func TestBlockJumpAtGridEdgeStays(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 9, Col: 1})

	press(h, key.KeyDown, key.ModCtrl)
	focusAt(t, state, grid.Coord{Row: 9, Col: 1})
}

func TestBlockJumpThroughEmptyRunLandsOnEdge(t *testing.T) {
	h, state, _ := newFixture(t)
	// Column 2 is all empty: the walk runs to the last row.
	state.SetActiveCell(grid.Coord{Row: 0, Col: 2})

	press(h, key.KeyDown, key.ModCtrl)
	focusAt(t, state, grid.Coord{Row: 9, Col: 2})
}

func TestCtrlShiftSelectsOnePastTheEdge(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 0, Col: 1})

	// Jump lands on row 1; the extension takes one extra step onto the
	// hole at row 2 and selects through it.
	press(h, key.KeyDown, key.ModCtrl|key.ModShift)

	focusAt(t, state, grid.Coord{Row: 2, Col: 1})
	if state.Count() != 3 {
		t.Errorf("Count = %d, want 3", state.Count())
	}
}

func TestCtrlShiftNoExtraStepWithoutData(t *testing.T) {
	h, state, _ := newFixture(t)
	// An all-empty walk to the boundary found no block edge; no extra
	// step, but the range still extends to the landing row.
	state.SetActiveCell(grid.Coord{Row: 0, Col: 2})

	press(h, key.KeyDown, key.ModCtrl|key.ModShift)

	focusAt(t, state, grid.Coord{Row: 9, Col: 2})
	if state.Count() != 10 {
		t.Errorf("Count = %d, want 10", state.Count())
	}
}

func TestHomeEndKeys(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 3, Col: 1})

	press(h, key.KeyHome, key.ModNone)
	focusAt(t, state, grid.Coord{Row: 3, Col: 0})

	press(h, key.KeyEnd, key.ModNone)
	focusAt(t, state, grid.Coord{Row: 3, Col: 2})

	press(h, key.KeyHome, key.ModCtrl)
	focusAt(t, state, grid.Coord{})

	press(h, key.KeyEnd, key.ModCtrl)
	focusAt(t, state, grid.Coord{Row: 9, Col: 2})
}

func TestPageKeysMoveByViewportHeight(t *testing.T) {
	h, state, _ := newFixture(t)
	// Viewport shows 4 rows.
	state.SetActiveCell(grid.Coord{Row: 1, Col: 0})

	press(h, key.KeyPageDown, key.ModNone)
	focusAt(t, state, grid.Coord{Row: 5, Col: 0})

	press(h, key.KeyPageUp, key.ModNone)
	focusAt(t, state, grid.Coord{Row: 1, Col: 0})

	press(h, key.KeyPageUp, key.ModNone)
	focusAt(t, state, grid.Coord{Row: 0, Col: 0})
}

func TestNavigationScrollsFocusIntoView(t *testing.T) {
	h, state, oracle := newFixture(t)
	state.SetActiveCell(grid.Coord{Row: 0, Col: 0})

	press(h, key.KeyEnd, key.ModCtrl)

	_, y := oracle.Viewport().Scroll()
	if y != 6 {
		t.Errorf("scrollY = %d, want 6 (row 9 revealed in a 4-row view)", y)
	}
}

func TestEscapeClearsSelection(t *testing.T) {
	h, state, _ := newFixture(t)
	state.SetRange(grid.Coord{}, grid.Coord{Row: 2, Col: 2})

	if !press(h, key.KeyEscape, key.ModNone) {
		t.Fatal("escape not consumed")
	}
	if state.Count() != 0 {
		t.Errorf("Count = %d, want 0", state.Count())
	}
	if _, ok := state.Focus(); ok {
		t.Error("focus survived escape")
	}
}

func TestNavWithoutFocusIsConsumedNoOp(t *testing.T) {
	h, state, _ := newFixture(t)

	if !press(h, key.KeyDown, key.ModNone) {
		t.Fatal("nav key not consumed")
	}
	if state.Count() != 0 {
		t.Errorf("Count = %d, want 0", state.Count())
	}
	if _, ok := state.Focus(); ok {
		t.Error("focus appeared without a prior click")
	}
}

func TestNonNavKeyNotConsumed(t *testing.T) {
	h, _, _ := newFixture(t)
	if press(h, key.KeyNone, key.ModNone) {
		t.Error("unknown key reported as consumed")
	}
}

func TestEmptyGridConsumesNavKeys(t *testing.T) {
	store := grid.NewStore(nil)
	oracle := geometry.NewOracle(store, geometry.DefaultLayoutConfig())
	state := selection.NewState(store, event.NewBus())
	h := NewHandler(store, oracle, state)

	if !press(h, key.KeyDown, key.ModNone) {
		t.Error("nav key on empty grid not consumed")
	}
}
