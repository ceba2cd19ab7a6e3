package touch

import (
	"fmt"
	"testing"

	"github.com/gabrielmiguelok/gridselect/internal/event"
	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
	"github.com/gabrielmiguelok/gridselect/internal/input/pointer"
	"github.com/gabrielmiguelok/gridselect/internal/selection"
)

// newFixture wires a touch handler over a 20x4 snapshot on a 17x9
// surface; the data region sits at (5,1) and every column is 6 wide.
func newFixture(t *testing.T) (*Handler, *selection.State, *event.Bus) {
	t.Helper()
	var rr []grid.Row
	for i := 0; i < 20; i++ {
		rec := make(map[string]any, 4)
		for j := 0; j < 4; j++ {
			rec[fmt.Sprintf("f%d", j)] = fmt.Sprintf("r%dc%d", i, j)
		}
		rr = append(rr, grid.Row{ID: grid.RowID(fmt.Sprintf("row-%d", i)), Record: rec})
	}
	var cc []grid.Column
	for j := 0; j < 4; j++ {
		cc = append(cc, grid.Column{
			ID:    grid.ColumnID(fmt.Sprintf("col-%d", j)),
			Field: fmt.Sprintf("f%d", j),
			Title: fmt.Sprintf("C%d", j),
		})
	}
	store := grid.NewStore(grid.NewSnapshot(rr, cc))

	bus := event.NewBus()
	oracle := geometry.NewOracle(store, geometry.DefaultLayoutConfig())
	oracle.Resize(17, 9)
	state := selection.NewState(store, bus)
	ph := pointer.NewHandler(pointer.DefaultConfig(), oracle, state)
	return NewHandler(ph), state, bus
}

func touchEvent(id int64, x, y int, phase Phase) Event {
	return Event{ID: id, Position: geometry.Point{X: x, Y: y}, Phase: phase}
}

func TestSingleFingerDrag(t *testing.T) {
	h, state, bus := newFixture(t)

	var started, ended int
	_, _ = bus.Subscribe(event.TopicDragStarted, func(event.Event) { started++ })
	_, _ = bus.Subscribe(event.TopicDragEnded, func(event.Event) { ended++ })

	h.Handle(touchEvent(1, 5, 1, PhaseBegin))
	if !h.IsTracking() {
		t.Fatal("not tracking after begin")
	}
	if state.Count() != 1 {
		t.Fatalf("Count after touch down = %d, want 1", state.Count())
	}

	h.Handle(touchEvent(1, 12, 3, PhaseMove))
	if state.Count() != 6 {
		t.Errorf("Count mid-drag = %d, want 6", state.Count())
	}

	h.Handle(touchEvent(1, 12, 3, PhaseEnd))
	if h.IsTracking() {
		t.Error("still tracking after end")
	}
	if started != 1 || ended != 1 {
		t.Errorf("drag events: started %d ended %d, want 1 and 1", started, ended)
	}
	if state.Count() != 6 {
		t.Errorf("Count after lift = %d, want 6", state.Count())
	}
}

func TestSecondFingerAbortsGesture(t *testing.T) {
	h, state, bus := newFixture(t)

	var ended int
	_, _ = bus.Subscribe(event.TopicDragEnded, func(event.Event) { ended++ })

	h.Handle(touchEvent(1, 5, 1, PhaseBegin))
	h.Handle(touchEvent(1, 12, 3, PhaseMove))

	// Pinch begins: the marquee commits as it stood and goes quiet.
	h.Handle(touchEvent(2, 14, 5, PhaseBegin))

	if h.IsTracking() {
		t.Error("still tracking after second finger")
	}
	if ended != 1 {
		t.Errorf("dragsEnded = %d, want 1", ended)
	}
	if state.Count() != 6 {
		t.Errorf("Count = %d, want 6 (committed at abort)", state.Count())
	}

	// Neither finger drives selection any more.
	h.Handle(touchEvent(1, 16, 7, PhaseMove))
	h.Handle(touchEvent(2, 16, 7, PhaseMove))
	if state.Count() != 6 {
		t.Error("suppressed fingers changed the selection")
	}

	// First finger lifts; one finger remains and must stay suppressed.
	h.Handle(touchEvent(1, 16, 7, PhaseEnd))
	h.Handle(touchEvent(2, 6, 2, PhaseMove))
	if state.Count() != 6 {
		t.Error("remaining finger drove the selection before lifting")
	}

	// All fingers up: the next touch is a fresh gesture.
	h.Handle(touchEvent(2, 6, 2, PhaseEnd))
	h.Handle(touchEvent(3, 6, 2, PhaseBegin))
	if !h.IsTracking() {
		t.Error("fresh touch after full lift not tracked")
	}
	if state.Count() != 1 {
		t.Errorf("Count for fresh touch = %d, want 1", state.Count())
	}
}

func TestUntrackedFingerMovesIgnored(t *testing.T) {
	h, state, _ := newFixture(t)

	h.Handle(touchEvent(1, 5, 1, PhaseBegin))
	// Moves for an ID that was never tracked do nothing.
	h.Handle(touchEvent(9, 12, 3, PhaseMove))

	if state.Count() != 1 {
		t.Errorf("Count = %d, want 1", state.Count())
	}
	h.Handle(touchEvent(1, 5, 1, PhaseEnd))
}

func TestTouchTapSelectsCell(t *testing.T) {
	h, state, bus := newFixture(t)

	var started int
	_, _ = bus.Subscribe(event.TopicDragStarted, func(event.Event) { started++ })

	h.Handle(touchEvent(1, 11, 2, PhaseBegin)) // cell (1,1)
	h.Handle(touchEvent(1, 11, 2, PhaseEnd))

	if state.Count() != 1 || !state.Contains(grid.CellRef{Row: "row-1", Col: "col-1"}) {
		t.Errorf("tap selected %v", state.Cells())
	}
	if started != 0 {
		t.Error("tap started a drag")
	}
}
