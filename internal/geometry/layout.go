package geometry

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/gabrielmiguelok/gridselect/internal/grid"
)

// cellPadding is the horizontal padding added to measured column content.
const cellPadding = 2

// LayoutConfig controls how the grid is measured and positioned.
type LayoutConfig struct {
	// RowHeight is the height of every data row.
	RowHeight int

	// MinColumnWidth and MaxColumnWidth bound measured column widths.
	MinColumnWidth int
	MaxColumnWidth int

	// HeaderHeight is the height of the column-header band.
	HeaderHeight int

	// GutterWidth is the width of the row-number gutter band.
	GutterWidth int

	// WidthSampleRows caps how many rows are measured per column.
	WidthSampleRows int
}

// DefaultLayoutConfig returns sensible defaults for a terminal grid.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		RowHeight:       1,
		MinColumnWidth:  6,
		MaxColumnWidth:  24,
		HeaderHeight:    1,
		GutterWidth:     5,
		WidthSampleRows: 64,
	}
}

// Layout positions every visible cell of one snapshot in content space.
// It is immutable once built; a new snapshot gets a new Layout.
type Layout struct {
	cfg  LayoutConfig
	snap *grid.Snapshot

	colWidths  []int
	colOffsets []int // prefix sums, len(cols)+1; last entry is total width
}

// NewLayout measures the snapshot's columns and builds a layout.
func NewLayout(snap *grid.Snapshot, cfg LayoutConfig) *Layout {
	if cfg.RowHeight < 1 {
		cfg.RowHeight = 1
	}
	if cfg.MinColumnWidth < 1 {
		cfg.MinColumnWidth = 1
	}
	if cfg.MaxColumnWidth < cfg.MinColumnWidth {
		cfg.MaxColumnWidth = cfg.MinColumnWidth
	}

	l := &Layout{cfg: cfg, snap: snap}
	l.measure()
	return l
}

// measure computes column widths from header titles and sampled values.
func (l *Layout) measure() {
	cols := l.snap.Columns()
	rows := l.snap.RowCount()
	sample := rows
	if l.cfg.WidthSampleRows > 0 && sample > l.cfg.WidthSampleRows {
		sample = l.cfg.WidthSampleRows
	}

	l.colWidths = make([]int, len(cols))
	l.colOffsets = make([]int, len(cols)+1)

	for ci, col := range cols {
		w := runewidth.StringWidth(col.Title)
		for ri := 0; ri < sample; ri++ {
			cw := runewidth.StringWidth(grid.FormatValue(l.snap.Value(grid.Coord{Row: ri, Col: ci})))
			if cw > w {
				w = cw
			}
		}
		w += cellPadding
		if w < l.cfg.MinColumnWidth {
			w = l.cfg.MinColumnWidth
		}
		if w > l.cfg.MaxColumnWidth {
			w = l.cfg.MaxColumnWidth
		}
		l.colWidths[ci] = w
		l.colOffsets[ci+1] = l.colOffsets[ci] + w
	}
}

// Snapshot returns the snapshot the layout was built from.
func (l *Layout) Snapshot() *grid.Snapshot { return l.snap }

// RowHeight returns the height of one data row.
func (l *Layout) RowHeight() int { return l.cfg.RowHeight }

// HeaderHeight returns the height of the column-header band.
func (l *Layout) HeaderHeight() int { return l.cfg.HeaderHeight }

// GutterWidth returns the width of the row-number gutter band.
func (l *Layout) GutterWidth() int { return l.cfg.GutterWidth }

// ColumnWidth returns the width of the column at the given index.
func (l *Layout) ColumnWidth(i int) int {
	if i < 0 || i >= len(l.colWidths) {
		return 0
	}
	return l.colWidths[i]
}

// ColumnOffset returns the content-space X of the column's left edge.
func (l *Layout) ColumnOffset(i int) int {
	if i < 0 || i >= len(l.colOffsets) {
		return 0
	}
	return l.colOffsets[i]
}

// ContentSize returns the total extent of the data region.
func (l *Layout) ContentSize() (width, height int) {
	return l.colOffsets[len(l.colOffsets)-1], l.snap.RowCount() * l.cfg.RowHeight
}

// CellBounds returns the content-space bounds of the cell at the
// coordinate, or false when the coordinate is out of bounds.
func (l *Layout) CellBounds(c grid.Coord) (Rect, bool) {
	if !l.snap.Contains(c) {
		return Rect{}, false
	}
	return Rect{
		X:      l.colOffsets[c.Col],
		Y:      c.Row * l.cfg.RowHeight,
		Width:  l.colWidths[c.Col],
		Height: l.cfg.RowHeight,
	}, true
}

// ColumnAt returns the index of the column covering content-space x.
func (l *Layout) ColumnAt(x int) (int, bool) {
	n := len(l.colWidths)
	if n == 0 || x < 0 || x >= l.colOffsets[n] {
		return 0, false
	}
	// First column whose right edge is past x.
	i := sort.Search(n, func(i int) bool { return l.colOffsets[i+1] > x })
	if i >= n {
		return 0, false
	}
	return i, true
}

// RowAt returns the index of the row covering content-space y.
func (l *Layout) RowAt(y int) (int, bool) {
	if y < 0 {
		return 0, false
	}
	i := y / l.cfg.RowHeight
	if i >= l.snap.RowCount() {
		return 0, false
	}
	return i, true
}
