package pointer

import (
	"sync"

	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/selection"
)

// Handler processes pointer events and drives the selection state.
type Handler struct {
	mu     sync.Mutex
	config Config

	oracle *geometry.Oracle
	state  *selection.State

	drag *dragTracker
}

// NewHandler creates a pointer handler.
func NewHandler(config Config, oracle *geometry.Oracle, state *selection.State) *Handler {
	return &Handler{
		config: config,
		oracle: oracle,
		state:  state,
		drag:   newDragTracker(),
	}
}

// Handle processes one pointer event. Events must be delivered in host
// order; each event's selection recomputation completes before Handle
// returns.
func (h *Handler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Action {
	case ActionPress:
		h.handlePress(event)
	case ActionRelease:
		h.handleRelease(event)
	case ActionMove:
		h.handleMove(event)
	}
}

// handlePress handles button press events.
func (h *Handler) handlePress(event Event) {
	if event.Button.IsWheel() {
		h.handleWheel(event)
		return
	}
	if event.Button != ButtonLeft {
		// Right/middle button gestures (context menu, paste) belong to
		// collaborators layered above the engine.
		return
	}

	region := h.oracle.RegionAt(event.Position)
	switch region {
	case geometry.RegionCorner:
		if h.config.EnableHeaderSelection && event.Modifiers.IsEmpty() {
			h.state.SelectAll()
		}

	case geometry.RegionColumnHeader:
		if h.config.EnableHeaderSelection && event.Modifiers.IsEmpty() {
			if col, ok := h.oracle.ColumnAtPoint(event.Position); ok {
				h.state.SelectColumn(col)
			}
		}

	case geometry.RegionRowGutter:
		if h.config.EnableHeaderSelection && event.Modifiers.IsEmpty() {
			if row, ok := h.oracle.RowAtPoint(event.Position); ok {
				h.state.SelectRow(row)
			}
		}

	case geometry.RegionCells:
		h.handleCellPress(event)
	}
}

// handleCellPress handles a primary press inside the data region.
func (h *Handler) handleCellPress(event Event) {
	if event.Modifiers.HasShift() {
		// Shift+click extends the range from the current anchor and
		// never arms a marquee drag.
		if cell, ok := h.oracle.CellAtPoint(event.Position); ok {
			h.state.ExtendTo(cell)
		}
		return
	}
	if !event.Modifiers.IsEmpty() {
		// A modified press is reserved; it neither selects nor arms.
		return
	}

	cell, ok := h.oracle.CellAtPoint(event.Position)
	if !ok {
		// Press outside any data cell: stay idle.
		return
	}

	// Armed: select the pressed cell immediately. A drag may follow.
	h.drag.start(h.oracle.ScreenToContent(event.Position), cell, event.Button)
	h.state.SetActiveCell(cell)
}

// handleMove handles pointer movement.
func (h *Handler) handleMove(event Event) {
	if !h.drag.active {
		return
	}

	// The host may have dropped the release event (pointer left the
	// window). A move without the button held ends the gesture.
	if event.Button != ButtonLeft {
		h.finishDrag()
		return
	}

	if !h.config.EnableDragSelection {
		return
	}

	if !h.drag.selecting {
		h.drag.selecting = true
		h.state.StartDrag(h.drag.origin)
	}

	// Rectangle spans the original press point and the current pointer
	// position, in content space.
	content := h.oracle.ScreenToContent(event.Position)
	rect := geometry.RectBetween(h.drag.pressContent, content)
	h.drag.lastRect = rect

	h.autoScroll(event.Position)

	h.state.UpdateDrag(rect, h.oracle.CellsIntersecting(rect))
}

// handleRelease handles button release events.
func (h *Handler) handleRelease(event Event) {
	if event.Button.IsWheel() || !h.drag.active {
		return
	}
	h.finishDrag()
}

// finishDrag commits the final intersection of the last rectangle,
// clears the drag state, and returns the handler to idle. Safe to call
// from both normal release and defensive recovery paths; it runs at
// most once per gesture.
func (h *Handler) finishDrag() {
	if h.drag.isSelecting() {
		rect := h.drag.lastRect
		h.state.UpdateDrag(rect, h.oracle.CellsIntersecting(rect))
		h.state.EndDrag()
	}
	h.drag.end()
}

// Abort force-terminates the current gesture without a release event,
// committing whatever the last move computed. Used by the touch adapter
// when a second finger appears.
func (h *Handler) Abort() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.drag.active {
		h.finishDrag()
	}
}

// autoScroll nudges the scroll offsets when the pointer is within the
// edge threshold of the data region. It fires on every move event, so
// scrolling continues as long as the pointer keeps moving near an edge;
// the viewport clamps to its natural bounds.
func (h *Handler) autoScroll(pos geometry.Point) {
	region := h.oracle.DataRegion()
	threshold := h.config.EdgeScrollThreshold
	step := h.config.EdgeScrollStep

	var dx, dy int
	if pos.X < region.X+threshold {
		dx = -step
	} else if pos.X > region.Right()-1-threshold {
		dx = step
	}
	if pos.Y < region.Y+threshold {
		dy = -step
	} else if pos.Y > region.Bottom()-1-threshold {
		dy = step
	}

	if dx != 0 || dy != 0 {
		h.oracle.Viewport().ScrollBy(dx, dy)
	}
}

// handleWheel scrolls the viewport for wheel ticks.
func (h *Handler) handleWheel(event Event) {
	rows := h.config.WheelScrollRows
	if event.Modifiers.HasShift() {
		rows = h.config.WheelScrollRowsShift
	}
	rowHeight := h.oracle.Layout().RowHeight()

	switch event.Button {
	case ButtonWheelUp:
		h.oracle.Viewport().ScrollBy(0, -rows*rowHeight)
	case ButtonWheelDown:
		h.oracle.Viewport().ScrollBy(0, rows*rowHeight)
	case ButtonWheelLeft:
		h.oracle.Viewport().ScrollBy(-h.config.WheelScrollCols, 0)
	case ButtonWheelRight:
		h.oracle.Viewport().ScrollBy(h.config.WheelScrollCols, 0)
	}
}

// Reset clears all gesture state without committing anything.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drag.end()
}

// IsDragging returns true if a marquee drag is in progress.
func (h *Handler) IsDragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drag.isSelecting()
}
