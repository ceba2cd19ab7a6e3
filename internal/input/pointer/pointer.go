package pointer

import (
	"time"

	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/input/key"
)

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonWheelUp indicates a wheel tick up.
	ButtonWheelUp
	// ButtonWheelDown indicates a wheel tick down.
	ButtonWheelDown
	// ButtonWheelLeft indicates a horizontal wheel tick left.
	ButtonWheelLeft
	// ButtonWheelRight indicates a horizontal wheel tick right.
	ButtonWheelRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	case ButtonWheelLeft:
		return "wheel-left"
	case ButtonWheelRight:
		return "wheel-right"
	default:
		return "none"
	}
}

// IsWheel returns true for wheel buttons.
func (b Button) IsWheel() bool {
	return b == ButtonWheelUp || b == ButtonWheelDown ||
		b == ButtonWheelLeft || b == ButtonWheelRight
}

// Action represents the type of pointer action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates pointer movement. Button carries the button
	// currently held, or ButtonNone; the handler uses this to recover
	// when a host drops the release event.
	ActionMove
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	default:
		return "none"
	}
}

// Event represents a pointer input event in grid-surface screen space.
type Event struct {
	// Position is the screen coordinate on the grid surface.
	Position geometry.Point

	// Button is the button involved. For ActionMove it is the button
	// currently held.
	Button Button

	// Modifiers are the keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of pointer action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Config configures pointer handler behavior.
type Config struct {
	// EdgeScrollThreshold is how close to a data-region edge, in cells,
	// the pointer must be during a drag to trigger auto-scroll.
	EdgeScrollThreshold int

	// EdgeScrollStep is the scroll nudge applied per move event while
	// the pointer stays inside an edge zone.
	EdgeScrollStep int

	// WheelScrollRows is the number of rows scrolled per wheel tick.
	WheelScrollRows int

	// WheelScrollRowsShift is the row count when Shift is held.
	WheelScrollRowsShift int

	// WheelScrollCols is the horizontal scroll per sideways wheel tick.
	WheelScrollCols int

	// EnableDragSelection enables marquee selection via drag.
	EnableDragSelection bool

	// EnableHeaderSelection enables whole-row/column/all selection from
	// gutter, header, and corner clicks.
	EnableHeaderSelection bool
}

// DefaultConfig returns sensible default configuration for a terminal grid.
func DefaultConfig() Config {
	return Config{
		EdgeScrollThreshold:   2,
		EdgeScrollStep:        1,
		WheelScrollRows:       3,
		WheelScrollRowsShift:  1,
		WheelScrollCols:       4,
		EnableDragSelection:   true,
		EnableHeaderSelection: true,
	}
}
