package key

// Key represents a keyboard key the grid reacts to.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// KeyEscape clears the current selection.
	KeyEscape
)

// String returns a string representation of the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyEscape:
		return "Escape"
	default:
		return "None"
	}
}

// IsArrow returns true for the four arrow keys.
func (k Key) IsArrow() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}

// Delta returns the single-step row/column movement of an arrow key.
// Non-arrow keys return (0, 0).
func (k Key) Delta() (dRow, dCol int) {
	switch k {
	case KeyUp:
		return -1, 0
	case KeyDown:
		return 1, 0
	case KeyLeft:
		return 0, -1
	case KeyRight:
		return 0, 1
	default:
		return 0, 0
	}
}
