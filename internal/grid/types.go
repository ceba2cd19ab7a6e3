package grid

import "fmt"

// RowID identifies a row independently of its current position.
// It remains stable across filtering, paging, and reordering.
type RowID string

// ColumnID identifies a column independently of its current position.
// It remains stable across hide/show and reordering.
type ColumnID string

// CellRef is the durable, identity-based address of a cell.
// Selection state is stored exclusively as CellRefs.
type CellRef struct {
	Row RowID
	Col ColumnID
}

// String returns a string representation of the reference.
func (r CellRef) String() string {
	return fmt.Sprintf("%s/%s", r.Row, r.Col)
}

// Coord is the transient, position-based address of a cell within one
// Snapshot. A Coord from one snapshot must never be reused against
// another; resolve it to a CellRef first.
type Coord struct {
	Row int
	Col int
}

// NewCoord creates a coordinate.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns the coordinate shifted by the given deltas.
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Equals returns true if two coordinates are identical.
func (c Coord) Equals(other Coord) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// Clamp returns the coordinate clamped to [0, rows-1] x [0, cols-1].
// With a non-positive dimension the corresponding axis clamps to 0.
func (c Coord) Clamp(rows, cols int) Coord {
	out := c
	if out.Row < 0 {
		out.Row = 0
	} else if out.Row > rows-1 {
		out.Row = rows - 1
		if out.Row < 0 {
			out.Row = 0
		}
	}
	if out.Col < 0 {
		out.Col = 0
	} else if out.Col > cols-1 {
		out.Col = cols - 1
		if out.Col < 0 {
			out.Col = 0
		}
	}
	return out
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
