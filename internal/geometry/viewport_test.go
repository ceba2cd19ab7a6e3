package geometry

import "testing"

func TestViewportClamping(t *testing.T) {
	vp := NewViewport(20, 10)
	vp.SetContentSize(100, 50)

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"in range", 30, 20, 30, 20},
		{"negative", -5, -5, 0, 0},
		{"past max", 500, 500, 80, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp.ScrollTo(tt.x, tt.y)
			x, y := vp.Scroll()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Scroll() = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestViewportScrollBy(t *testing.T) {
	vp := NewViewport(20, 10)
	vp.SetContentSize(100, 50)

	vp.ScrollBy(5, 3)
	vp.ScrollBy(5, 3)
	if x, y := vp.Scroll(); x != 10 || y != 6 {
		t.Errorf("Scroll() = (%d,%d), want (10,6)", x, y)
	}

	vp.ScrollBy(-100, -100)
	if x, y := vp.Scroll(); x != 0 || y != 0 {
		t.Errorf("Scroll() after large negative delta = (%d,%d), want (0,0)", x, y)
	}
}

func TestViewportContentSmallerThanView(t *testing.T) {
	vp := NewViewport(80, 40)
	vp.SetContentSize(30, 10)
	vp.ScrollTo(50, 50)
	if x, y := vp.Scroll(); x != 0 || y != 0 {
		t.Errorf("Scroll() = (%d,%d), want (0,0) when content fits", x, y)
	}
}

func TestViewportResizeReclamps(t *testing.T) {
	vp := NewViewport(10, 10)
	vp.SetContentSize(100, 100)
	vp.ScrollTo(90, 90)

	vp.Resize(50, 50)
	if x, y := vp.Scroll(); x != 50 || y != 50 {
		t.Errorf("Scroll() after grow = (%d,%d), want (50,50)", x, y)
	}
}

func TestViewportCoordinateRoundTrip(t *testing.T) {
	vp := NewViewport(20, 10)
	vp.SetContentSize(100, 50)
	vp.ScrollTo(15, 7)

	p := Point{X: 3, Y: 4}
	cp := vp.ScreenToContent(p)
	if cp != (Point{18, 11}) {
		t.Errorf("ScreenToContent = %v, want (18,11)", cp)
	}
	if back := vp.ContentToScreen(cp); back != p {
		t.Errorf("ContentToScreen round trip = %v, want %v", back, p)
	}
}

func TestViewportReveal(t *testing.T) {
	tests := []struct {
		name           string
		startX, startY int
		target         Rect
		wantX, wantY   int
		wantMoved      bool
	}{
		{"already visible", 0, 0, Rect{5, 2, 6, 1}, 0, 0, false},
		{"below view", 0, 0, Rect{0, 14, 6, 1}, 0, 5, true},
		{"above view", 0, 20, Rect{0, 4, 6, 1}, 0, 4, true},
		{"right of view", 0, 0, Rect{30, 0, 6, 1}, 16, 0, true},
		{"left of view", 40, 0, Rect{10, 0, 6, 1}, 10, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewport(20, 10)
			vp.SetContentSize(100, 50)
			vp.ScrollTo(tt.startX, tt.startY)

			moved := vp.Reveal(tt.target)
			if moved != tt.wantMoved {
				t.Errorf("Reveal moved = %v, want %v", moved, tt.wantMoved)
			}
			if x, y := vp.Scroll(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Scroll() = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestViewportRevealOversizedRect(t *testing.T) {
	vp := NewViewport(20, 10)
	vp.SetContentSize(100, 50)
	vp.ScrollTo(40, 0)

	// Wider than the viewport: align the left edge.
	vp.Reveal(Rect{10, 0, 30, 1})
	if x, _ := vp.Scroll(); x != 10 {
		t.Errorf("Scroll().x = %d, want 10 (left edge of oversized rect)", x)
	}
}
