package grid

import "fmt"

// Range is a rectangular span of cells between two coordinates.
// Anchor is where the range started; Head is the movable end.
// When Anchor == Head the range covers a single cell.
// Range is an immutable value type.
type Range struct {
	Anchor Coord
	Head   Coord
}

// NewRange creates a range from anchor to head.
func NewRange(anchor, head Coord) Range {
	return Range{Anchor: anchor, Head: head}
}

// NewCellRange creates a single-cell range.
func NewCellRange(c Coord) Range {
	return Range{Anchor: c, Head: c}
}

// IsSingle returns true if the range covers exactly one cell.
func (r Range) IsSingle() bool {
	return r.Anchor.Equals(r.Head)
}

// TopLeft returns the minimum-row, minimum-col corner.
func (r Range) TopLeft() Coord {
	return Coord{Row: min(r.Anchor.Row, r.Head.Row), Col: min(r.Anchor.Col, r.Head.Col)}
}

// BottomRight returns the maximum-row, maximum-col corner.
func (r Range) BottomRight() Coord {
	return Coord{Row: max(r.Anchor.Row, r.Head.Row), Col: max(r.Anchor.Col, r.Head.Col)}
}

// Normalize returns an equivalent range with Anchor at the top-left
// corner and Head at the bottom-right corner.
func (r Range) Normalize() Range {
	return Range{Anchor: r.TopLeft(), Head: r.BottomRight()}
}

// RowSpan returns the number of rows covered, inclusive.
func (r Range) RowSpan() int {
	return r.BottomRight().Row - r.TopLeft().Row + 1
}

// ColSpan returns the number of columns covered, inclusive.
func (r Range) ColSpan() int {
	return r.BottomRight().Col - r.TopLeft().Col + 1
}

// Count returns the number of cells covered.
func (r Range) Count() int {
	return r.RowSpan() * r.ColSpan()
}

// Contains returns true if the coordinate lies inside the range, inclusive.
func (r Range) Contains(c Coord) bool {
	tl, br := r.TopLeft(), r.BottomRight()
	return c.Row >= tl.Row && c.Row <= br.Row && c.Col >= tl.Col && c.Col <= br.Col
}

// Extend returns a new range with the head moved; the anchor stays fixed.
func (r Range) Extend(head Coord) Range {
	return Range{Anchor: r.Anchor, Head: head}
}

// Clamp returns the range with both ends clamped to the grid bounds.
func (r Range) Clamp(rows, cols int) Range {
	return Range{Anchor: r.Anchor.Clamp(rows, cols), Head: r.Head.Clamp(rows, cols)}
}

// Equals returns true if two ranges have the same anchor and head.
func (r Range) Equals(other Range) bool {
	return r.Anchor.Equals(other.Anchor) && r.Head.Equals(other.Head)
}

// SameArea returns true if two ranges cover the same rectangle,
// regardless of direction.
func (r Range) SameArea(other Range) bool {
	return r.TopLeft().Equals(other.TopLeft()) && r.BottomRight().Equals(other.BottomRight())
}

// Cells resolves the inclusive rectangle to identity references against
// the given snapshot, in row-major order with no duplicates. Coordinates
// outside the snapshot bounds are skipped.
func (r Range) Cells(snap *Snapshot) []CellRef {
	tl, br := r.TopLeft(), r.BottomRight()
	refs := make([]CellRef, 0, r.Count())
	for row := tl.Row; row <= br.Row; row++ {
		for col := tl.Col; col <= br.Col; col++ {
			ref, ok := snap.RefAt(Coord{Row: row, Col: col})
			if !ok {
				continue
			}
			refs = append(refs, ref)
		}
	}
	return refs
}

// String returns a string representation of the range.
func (r Range) String() string {
	if r.IsSingle() {
		return fmt.Sprintf("Cell%s", r.Head)
	}
	return fmt.Sprintf("Range(%s-%s)", r.Anchor, r.Head)
}
