package event

import (
	"time"

	"github.com/google/uuid"
)

// Metadata is standard information attached to every event.
type Metadata struct {
	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// Event is one notification on the bus. Events are immutable once created.
type Event struct {
	// Type is the hierarchical event type.
	Type Topic

	// Payload carries the event-specific data.
	Payload any

	// Metadata carries standard event information.
	Metadata Metadata
}

// New creates an event with generated metadata.
func New(eventType Topic, payload any, source string) Event {
	return Event{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}
