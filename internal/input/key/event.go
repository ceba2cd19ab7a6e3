package key

import (
	"fmt"
	"time"
)

// Event represents a key press delivered to the grid.
type Event struct {
	// Key is the pressed key.
	Key Key

	// Modifiers are the modifier keys held during the press.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event.
func NewEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods, Timestamp: time.Now()}
}

// String returns a representation like "Ctrl+Shift+Down".
func (e Event) String() string {
	if e.Modifiers == ModNone {
		return e.Key.String()
	}
	return fmt.Sprintf("%s+%s", e.Modifiers, e.Key)
}
