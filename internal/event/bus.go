package event

import (
	"sync"
	"sync/atomic"
)

// Handler receives events matching a subscription's pattern.
type Handler func(Event)

// Subscription identifies one registered handler.
type Subscription struct {
	id      uint64
	pattern Topic
}

// Pattern returns the topic pattern the subscription was made with.
func (s Subscription) Pattern() Topic {
	return s.pattern
}

// Stats reports bus activity counters.
type Stats struct {
	EventsPublished  uint64
	EventsDelivered  uint64
	HandlersExecuted uint64
}

type subscriber struct {
	id      uint64
	pattern Topic
	fn      Handler
}

// Bus delivers events synchronously to matching subscribers in
// subscription order. Publish returns after every handler has run.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscriber

	eventsPublished  atomic.Uint64
	eventsDelivered  atomic.Uint64
	handlersExecuted atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for the given topic pattern.
func (b *Bus) Subscribe(pattern Topic, fn Handler) (Subscription, error) {
	if fn == nil {
		return Subscription{}, ErrNilHandler
	}
	if err := pattern.Validate(); err != nil {
		return Subscription{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := subscriber{id: b.nextID, pattern: pattern, fn: fn}
	b.subs = append(b.subs, sub)
	return Subscription{id: sub.id, pattern: pattern}, nil
}

// Unsubscribe removes a previously registered subscription.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers the event to every matching subscriber, in
// subscription order, on the caller's goroutine.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	// Copy so handlers may subscribe/unsubscribe without deadlocking.
	matched := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if ev.Type.Matches(s.pattern) {
			matched = append(matched, s.fn)
		}
	}
	b.mu.RUnlock()

	b.eventsPublished.Add(1)
	if len(matched) == 0 {
		return
	}
	b.eventsDelivered.Add(1)
	for _, fn := range matched {
		fn(ev)
		b.handlersExecuted.Add(1)
	}
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsPublished:  b.eventsPublished.Load(),
		EventsDelivered:  b.eventsDelivered.Load(),
		HandlersExecuted: b.handlersExecuted.Load(),
	}
}
