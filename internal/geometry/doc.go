// Package geometry maps between screen space and grid cells.
//
// It provides the pixel-level primitives (Point, Rect), a Viewport with
// clamped scroll offsets, a Layout that positions every visible cell,
// and the Oracle the input controllers query: cell under a point, cells
// intersecting a marquee rectangle, and minimal scroll-into-view.
//
// All cell positioning is done in content coordinates, whose origin is
// the top-left corner of the first data cell at zero scroll. Screen
// coordinates differ from content coordinates by the header/gutter bands
// and the current scroll offsets; conversion goes through the Oracle.
package geometry
