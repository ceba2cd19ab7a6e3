package geometry

import "sync"

// Viewport is the scrollable window onto the grid's data region.
// Scroll offsets are always clamped to the content's natural bounds;
// callers may request any delta and the viewport absorbs the excess.
type Viewport struct {
	mu sync.Mutex

	width  int
	height int

	scrollX int
	scrollY int

	contentWidth  int
	contentHeight int
}

// NewViewport creates a viewport with the given visible size.
func NewViewport(width, height int) *Viewport {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Viewport{width: width, height: height}
}

// Size returns the visible width and height.
func (v *Viewport) Size() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// Resize updates the visible size and re-clamps the scroll offsets.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.width = width
	v.height = height
	v.clampLocked()
}

// SetContentSize updates the total content extent and re-clamps.
func (v *Viewport) SetContentSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.contentWidth = width
	v.contentHeight = height
	v.clampLocked()
}

// Scroll returns the current scroll offsets.
func (v *Viewport) Scroll() (x, y int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollX, v.scrollY
}

// ScrollTo sets absolute scroll offsets, clamped to the content bounds.
func (v *Viewport) ScrollTo(x, y int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrollX = x
	v.scrollY = y
	v.clampLocked()
}

// ScrollBy shifts the scroll offsets by the given deltas, clamped.
func (v *Viewport) ScrollBy(dx, dy int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrollX += dx
	v.scrollY += dy
	v.clampLocked()
}

// Visible returns the content-space rectangle currently in view.
func (v *Viewport) Visible() Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Rect{X: v.scrollX, Y: v.scrollY, Width: v.width, Height: v.height}
}

// ScreenToContent converts a data-region screen point to content space.
func (v *Viewport) ScreenToContent(p Point) Point {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Point{X: p.X + v.scrollX, Y: p.Y + v.scrollY}
}

// ContentToScreen converts a content-space point to the data region.
func (v *Viewport) ContentToScreen(p Point) Point {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Point{X: p.X - v.scrollX, Y: p.Y - v.scrollY}
}

// Reveal scrolls the minimum amount needed to bring the given
// content-space rectangle fully into view (nearest-edge semantics).
// Rectangles larger than the viewport align to the top/left edge.
// Returns true if the offsets changed.
func (v *Viewport) Reveal(r Rect) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	oldX, oldY := v.scrollX, v.scrollY

	if r.Right() > v.scrollX+v.width {
		v.scrollX = r.Right() - v.width
	}
	if r.X < v.scrollX {
		v.scrollX = r.X
	}
	if r.Bottom() > v.scrollY+v.height {
		v.scrollY = r.Bottom() - v.height
	}
	if r.Y < v.scrollY {
		v.scrollY = r.Y
	}

	v.clampLocked()
	return v.scrollX != oldX || v.scrollY != oldY
}

// clampLocked keeps scroll offsets within [0, content-viewport].
func (v *Viewport) clampLocked() {
	maxX := v.contentWidth - v.width
	if maxX < 0 {
		maxX = 0
	}
	maxY := v.contentHeight - v.height
	if maxY < 0 {
		maxY = 0
	}
	if v.scrollX > maxX {
		v.scrollX = maxX
	}
	if v.scrollX < 0 {
		v.scrollX = 0
	}
	if v.scrollY > maxY {
		v.scrollY = maxY
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
}
