// Package grid defines the identity and coordinate model for a rectangular
// grid of cells, plus the immutable snapshot of the currently visible
// rows and columns that every other subsystem reads from.
//
// # Identity vs Position
//
// The package draws a hard line between two ways of naming a cell:
//
//   - CellRef is identity-based: a (RowID, ColumnID) pair that stays
//     stable while rows are filtered, paged, or reordered. All durable
//     state (the committed selection) is stored as CellRefs.
//   - Coord is position-based: a (row index, col index) pair valid only
//     against one Snapshot. Coords are used transiently while navigating
//     or dragging and are resolved to CellRefs before being persisted.
//
// RowID, ColumnID, and the two address types are deliberately distinct
// Go types so that mixing identity with position is a compile error
// rather than a latent runtime bug.
//
// # Snapshots
//
// A Snapshot is an immutable view of the visible grid: ordered rows,
// ordered columns, and a value accessor. Producers publish a fresh
// Snapshot whenever the visible set changes; consumers never mutate one.
package grid
