package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
	"github.com/gabrielmiguelok/gridselect/internal/selection"
)

// View paints one grid with its selection onto a Terminal.
type View struct {
	term     *Terminal
	theme    Theme
	provider grid.Provider
	oracle   *geometry.Oracle
	state    *selection.State
}

// NewView creates a grid view.
func NewView(term *Terminal, theme Theme, provider grid.Provider, oracle *geometry.Oracle, state *selection.State) *View {
	return &View{
		term:     term,
		theme:    theme,
		provider: provider,
		oracle:   oracle,
		state:    state,
	}
}

// Resize propagates a new screen size to the geometry oracle.
func (v *View) Resize(width, height int) {
	v.oracle.Resize(width, height)
}

// Draw renders the full grid surface and flushes it to the terminal.
func (v *View) Draw() {
	v.term.Clear()

	snap := v.provider.Snapshot()
	layout := v.oracle.Layout()
	width, height := v.term.Size()
	gutter := layout.GutterWidth()
	header := layout.HeaderHeight()
	scrollX, scrollY := v.oracle.Viewport().Scroll()

	v.fill(0, 0, gutter, header, v.theme.Corner)
	v.drawHeader(snap, layout, width, gutter, header, scrollX)
	v.drawBody(snap, layout, width, height, gutter, header, scrollX, scrollY)

	v.term.Show()
}

// drawHeader paints the column-title band.
func (v *View) drawHeader(snap *grid.Snapshot, layout *geometry.Layout, width, gutter, header, scrollX int) {
	if header <= 0 {
		return
	}
	v.fill(gutter, 0, width-gutter, header, v.theme.Header)
	for ci, col := range snap.Columns() {
		x := gutter + layout.ColumnOffset(ci) - scrollX
		if x >= width {
			break
		}
		v.drawText(x+1, 0, gutter, width, layout.ColumnWidth(ci)-1, col.Title, v.theme.Header)
	}
}

// drawBody paints the row gutter and the data cells.
func (v *View) drawBody(snap *grid.Snapshot, layout *geometry.Layout, width, height, gutter, header, scrollX, scrollY int) {
	rowHeight := layout.RowHeight()
	focus, hasFocus := v.state.Focus()
	_, dragging := v.state.DragRect()

	startRow := scrollY / rowHeight
	for ri := startRow; ri < snap.RowCount(); ri++ {
		y := header + ri*rowHeight - scrollY
		if y >= height {
			break
		}
		if y < header {
			continue
		}

		// Row gutter: 1-based row number, right-aligned.
		v.fill(0, y, gutter, rowHeight, v.theme.Gutter)
		num := fmt.Sprintf("%*d", gutter-1, ri+1)
		v.drawText(0, y, 0, gutter, gutter-1, num, v.theme.Gutter)

		for ci := range snap.Columns() {
			x := gutter + layout.ColumnOffset(ci) - scrollX
			colWidth := layout.ColumnWidth(ci)
			if x >= width {
				break
			}
			if x+colWidth <= gutter {
				continue
			}

			coord := grid.Coord{Row: ri, Col: ci}
			style := v.cellStyle(snap, coord, focus, hasFocus, dragging)

			v.fillClipped(x, y, colWidth, rowHeight, gutter, width, style)
			text := grid.FormatValue(snap.Value(coord))
			v.drawText(x+1, y, gutter, width, colWidth-1, text, style)
		}
	}
}

// cellStyle picks the style for one cell from the selection state.
func (v *View) cellStyle(snap *grid.Snapshot, coord grid.Coord, focus grid.Coord, hasFocus, dragging bool) tcell.Style {
	if hasFocus && focus.Equals(coord) {
		return v.theme.Focus
	}
	if ref, ok := snap.RefAt(coord); ok && v.state.Contains(ref) {
		if dragging {
			return v.theme.Marquee
		}
		return v.theme.Selected
	}
	if coord.Row%2 == 1 {
		return v.theme.CellAlt
	}
	return v.theme.Cell
}

// fill paints a solid rectangle without clipping.
func (v *View) fill(x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			v.term.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

// fillClipped paints a rectangle clipped to [minX, maxX).
func (v *View) fillClipped(x, y, w, h, minX, maxX int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cx := x + dx
			if cx < minX || cx >= maxX {
				continue
			}
			v.term.SetContent(cx, y+dy, ' ', nil, style)
		}
	}
}

// drawText writes a string grapheme by grapheme, clipped to the column
// budget and the [minX, maxX) horizontal window.
func (v *View) drawText(x, y, minX, maxX, budget int, s string, style tcell.Style) {
	if budget <= 0 {
		return
	}
	cx := x
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		cw := runewidth.StringWidth(g.Str())
		if cw <= 0 {
			continue
		}
		if used+cw > budget {
			break
		}
		if cx >= minX && cx+cw <= maxX {
			v.term.SetContent(cx, y, runes[0], runes[1:], style)
		}
		cx += cw
		used += cw
	}
}
