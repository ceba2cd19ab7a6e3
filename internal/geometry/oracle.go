package geometry

import (
	"sync"

	"github.com/gabrielmiguelok/gridselect/internal/grid"
)

// Region classifies what part of the grid surface a screen point hits.
type Region uint8

const (
	// RegionNone is outside every interactive band.
	RegionNone Region = iota
	// RegionCells is the scrollable data region.
	RegionCells
	// RegionColumnHeader is the column-title band above the data region.
	RegionColumnHeader
	// RegionRowGutter is the row-number band left of the data region.
	RegionRowGutter
	// RegionCorner is the intersection of header and gutter (select-all).
	RegionCorner
)

// String returns a string representation of the region.
func (r Region) String() string {
	switch r {
	case RegionCells:
		return "cells"
	case RegionColumnHeader:
		return "column-header"
	case RegionRowGutter:
		return "row-gutter"
	case RegionCorner:
		return "corner"
	default:
		return "none"
	}
}

// Oracle answers the geometry queries the input controllers need:
// which cell is under a point, which cells a marquee rectangle touches,
// and how to reveal a cell with minimal scrolling.
//
// The Oracle always answers against the provider's current snapshot; a
// layout is rebuilt lazily whenever the snapshot identity changes, so
// mid-drag snapshot swaps are reflected by the very next query.
type Oracle struct {
	mu       sync.Mutex
	provider grid.Provider
	cfg      LayoutConfig
	vp       *Viewport
	layout   *Layout
}

// NewOracle creates an oracle over the given provider.
func NewOracle(provider grid.Provider, cfg LayoutConfig) *Oracle {
	return &Oracle{
		provider: provider,
		cfg:      cfg,
		vp:       NewViewport(0, 0),
	}
}

// Viewport returns the oracle's viewport.
func (o *Oracle) Viewport() *Viewport { return o.vp }

// Resize sets the size of the whole grid surface; the data region is
// what remains after the header and gutter bands.
func (o *Oracle) Resize(width, height int) {
	o.vp.Resize(width-o.cfg.GutterWidth, height-o.cfg.HeaderHeight)
}

// Layout returns the layout for the current snapshot, rebuilding it if
// the snapshot has changed since the last query.
func (o *Oracle) Layout() *Layout {
	snap := o.provider.Snapshot()

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.layout == nil || o.layout.Snapshot() != snap {
		o.layout = NewLayout(snap, o.cfg)
		w, h := o.layout.ContentSize()
		o.vp.SetContentSize(w, h)
	}
	return o.layout
}

// DataRegion returns the screen-space rectangle of the data region.
func (o *Oracle) DataRegion() Rect {
	w, h := o.vp.Size()
	return Rect{X: o.cfg.GutterWidth, Y: o.cfg.HeaderHeight, Width: w, Height: h}
}

// RegionAt classifies the screen point.
func (o *Oracle) RegionAt(p Point) Region {
	if p.X < 0 || p.Y < 0 {
		return RegionNone
	}
	inGutter := p.X < o.cfg.GutterWidth
	inHeader := p.Y < o.cfg.HeaderHeight
	switch {
	case inGutter && inHeader:
		return RegionCorner
	case inHeader:
		return RegionColumnHeader
	case inGutter:
		return RegionRowGutter
	default:
		return RegionCells
	}
}

// ScreenToContent converts a screen point to content space.
func (o *Oracle) ScreenToContent(p Point) Point {
	return o.vp.ScreenToContent(Point{X: p.X - o.cfg.GutterWidth, Y: p.Y - o.cfg.HeaderHeight})
}

// ContentToScreen converts a content-space point to screen space.
func (o *Oracle) ContentToScreen(p Point) Point {
	sp := o.vp.ContentToScreen(p)
	return Point{X: sp.X + o.cfg.GutterWidth, Y: sp.Y + o.cfg.HeaderHeight}
}

// CellAtPoint returns the coordinate of the cell under the screen point.
// Points outside the data region or past the last row/column report no match.
func (o *Oracle) CellAtPoint(p Point) (grid.Coord, bool) {
	if o.RegionAt(p) != RegionCells {
		return grid.Coord{}, false
	}
	l := o.Layout()
	cp := o.ScreenToContent(p)
	col, ok := l.ColumnAt(cp.X)
	if !ok {
		return grid.Coord{}, false
	}
	row, ok := l.RowAt(cp.Y)
	if !ok {
		return grid.Coord{}, false
	}
	return grid.Coord{Row: row, Col: col}, true
}

// ColumnAtPoint returns the column index under the screen point's X,
// regardless of band. Used for header clicks.
func (o *Oracle) ColumnAtPoint(p Point) (int, bool) {
	l := o.Layout()
	sx, _ := o.vp.Scroll()
	return l.ColumnAt(p.X - o.cfg.GutterWidth + sx)
}

// RowAtPoint returns the row index under the screen point's Y,
// regardless of band. Used for gutter clicks.
func (o *Oracle) RowAtPoint(p Point) (int, bool) {
	l := o.Layout()
	_, sy := o.vp.Scroll()
	return l.RowAt(p.Y - o.cfg.HeaderHeight + sy)
}

// CellBounds returns the content-space bounds of the cell.
func (o *Oracle) CellBounds(c grid.Coord) (Rect, bool) {
	return o.Layout().CellBounds(c)
}

// CellsIntersecting returns the identity references of every cell whose
// bounds touch the given content-space rectangle, in row-major order.
// The rectangle is treated as a closed region, so a degenerate rect
// still matches the single cell under it.
func (o *Oracle) CellsIntersecting(r Rect) []grid.CellRef {
	l := o.Layout()
	snap := l.Snapshot()
	if snap.RowCount() == 0 || snap.ColCount() == 0 {
		return nil
	}

	rh := l.RowHeight()
	startRow := r.Y / rh
	endRow := r.Bottom() / rh
	if startRow < 0 {
		startRow = 0
	}
	if endRow > snap.RowCount()-1 {
		endRow = snap.RowCount() - 1
	}
	if startRow > endRow {
		return nil
	}

	// Touching columns: every col whose [off, off+w) meets the closed
	// [r.X, r.Right()] interval.
	var cols []int
	for ci := 0; ci < snap.ColCount(); ci++ {
		off, w := l.ColumnOffset(ci), l.ColumnWidth(ci)
		if off > r.Right() {
			break
		}
		if r.X < off+w {
			cols = append(cols, ci)
		}
	}
	if len(cols) == 0 {
		return nil
	}

	refs := make([]grid.CellRef, 0, (endRow-startRow+1)*len(cols))
	for row := startRow; row <= endRow; row++ {
		for _, col := range cols {
			if ref, ok := snap.RefAt(grid.Coord{Row: row, Col: col}); ok {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// ScrollCellIntoView scrolls the minimum amount needed to fully reveal
// the cell (nearest-edge semantics). Out-of-bounds coordinates are
// ignored. Returns true if the scroll offsets changed.
func (o *Oracle) ScrollCellIntoView(c grid.Coord) bool {
	bounds, ok := o.CellBounds(c)
	if !ok {
		return false
	}
	return o.vp.Reveal(bounds)
}
