// Package pointer turns a raw pointer event stream (mouse or synthesized
// from touch) into grid selection updates.
//
// The handler runs one state machine per gesture:
//
//	Idle -> Armed:     primary press over a data cell with no modifiers;
//	                   the cell is selected immediately.
//	Armed -> Dragging: first move while the button is held; the marquee
//	                   rectangle starts updating the selection.
//	Dragging -> Idle:  release, or a move that reports the button no
//	                   longer held (some hosts drop the release event
//	                   when the pointer leaves the window).
//
// While dragging, the selection is always exactly the set of cells the
// marquee rectangle currently touches, recomputed from live geometry on
// every move. Near the edges of the data region each move also nudges
// the scroll offsets, producing continuous edge auto-scroll without a
// timer.
//
// Events are expected from a single top-level input surface, in host
// delivery order; the handler is safe for concurrent use but performs
// each event's recomputation to completion before the next.
package pointer
