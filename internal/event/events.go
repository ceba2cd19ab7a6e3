package event

import "github.com/gabrielmiguelok/gridselect/internal/grid"

// Topics published by the selection engine.
const (
	// TopicSelectionChanged fires on every committed change to the
	// selected-cell set. De-duplicated by the publisher: structurally
	// identical sets do not re-fire.
	TopicSelectionChanged Topic = "selection.changed"

	// TopicDragStarted fires when a pointer/touch gesture transitions
	// into an active marquee drag.
	TopicDragStarted Topic = "selection.drag.started"

	// TopicDragEnded fires when an active marquee drag is released or
	// aborted.
	TopicDragEnded Topic = "selection.drag.ended"

	// TopicSnapshotChanged fires when the visible row or column set is
	// replaced.
	TopicSnapshotChanged Topic = "grid.snapshot.changed"
)

// SelectionChanged is the payload for TopicSelectionChanged.
type SelectionChanged struct {
	// Cells is the committed selection, sorted by (RowID, ColumnID)
	// for deterministic consumption. The slice is owned by the
	// receiver and safe to retain.
	Cells []grid.CellRef
}

// DragStarted is the payload for TopicDragStarted.
type DragStarted struct {
	// Origin is the coordinate of the cell the drag was armed on.
	Origin grid.Coord
}

// DragEnded is the payload for TopicDragEnded.
type DragEnded struct {
	// Cells is the final committed selection of the drag episode.
	Cells []grid.CellRef
}

// SnapshotChanged is the payload for TopicSnapshotChanged.
type SnapshotChanged struct {
	// Snapshot is the newly published visible-grid snapshot.
	Snapshot *grid.Snapshot
}
