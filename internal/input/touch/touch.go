// Package touch adapts a raw touch event stream to the pointer handler.
//
// Only single-finger gestures drive selection: a second simultaneous
// touch immediately aborts the gesture (committing whatever the last
// move computed) so that pinch/zoom gestures owned by the host never
// half-drive a marquee. The gesture stays suppressed until every finger
// has lifted.
package touch

import (
	"sync"
	"time"

	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/input/pointer"
)

// Phase represents the lifecycle stage of one touch point.
type Phase uint8

const (
	// PhaseNone indicates no phase.
	PhaseNone Phase = iota
	// PhaseBegin indicates a finger touched down.
	PhaseBegin
	// PhaseMove indicates a tracked finger moved.
	PhaseMove
	// PhaseEnd indicates a finger lifted.
	PhaseEnd
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "none"
	}
}

// Event represents one touch point update in grid-surface screen space.
type Event struct {
	// ID identifies the touch point across its begin/move/end stream.
	ID int64

	// Position is the screen coordinate on the grid surface.
	Position geometry.Point

	// Phase is the lifecycle stage of the touch point.
	Phase Phase

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Handler converts single-finger touch gestures into pointer events.
type Handler struct {
	mu      sync.Mutex
	pointer *pointer.Handler

	active    map[int64]struct{}
	trackedID int64
	tracking  bool
	aborted   bool
}

// NewHandler creates a touch handler feeding the given pointer handler.
func NewHandler(p *pointer.Handler) *Handler {
	return &Handler{
		pointer: p,
		active:  make(map[int64]struct{}),
	}
}

// Handle processes one touch event.
func (h *Handler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Phase {
	case PhaseBegin:
		h.handleBegin(event)
	case PhaseMove:
		h.handleMove(event)
	case PhaseEnd:
		h.handleEnd(event)
	}
}

func (h *Handler) handleBegin(event Event) {
	h.active[event.ID] = struct{}{}

	if h.tracking {
		// Second finger: abort the gesture and suppress the rest.
		h.pointer.Abort()
		h.tracking = false
		h.aborted = true
		return
	}
	if h.aborted || len(h.active) > 1 {
		return
	}

	h.tracking = true
	h.trackedID = event.ID
	h.pointer.Handle(pointer.Event{
		Position:  event.Position,
		Button:    pointer.ButtonLeft,
		Action:    pointer.ActionPress,
		Timestamp: event.Timestamp,
	})
}

func (h *Handler) handleMove(event Event) {
	if !h.tracking || event.ID != h.trackedID {
		return
	}
	h.pointer.Handle(pointer.Event{
		Position:  event.Position,
		Button:    pointer.ButtonLeft,
		Action:    pointer.ActionMove,
		Timestamp: event.Timestamp,
	})
}

func (h *Handler) handleEnd(event Event) {
	delete(h.active, event.ID)

	if h.tracking && event.ID == h.trackedID {
		h.tracking = false
		h.pointer.Handle(pointer.Event{
			Position:  event.Position,
			Button:    pointer.ButtonLeft,
			Action:    pointer.ActionRelease,
			Timestamp: event.Timestamp,
		})
	}

	if len(h.active) == 0 {
		h.aborted = false
	}
}

// IsTracking returns true while a single-finger gesture is being
// forwarded to the pointer handler.
func (h *Handler) IsTracking() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tracking
}
