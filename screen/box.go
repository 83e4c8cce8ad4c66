package screen

// Box is a clip rectangle in cell coordinates, half-open on both axes:
// it covers columns [X, X+W) and rows [Y, Y+H).
type Box struct {
	X, Y, W, H int
}

// NewBox builds a Box, clamping a negative width or height to zero.
func NewBox(x, y, w, h int) Box {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Box{X: x, Y: y, W: w, H: h}
}

// Contains reports whether (x,y) falls within the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Empty reports whether the box covers no cells.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Clamp intersects b with the screen's actual bounds (0<=x<width,
// 0<=y<height), returning the resulting half-open box.
func (s *Screen) Clamp(b Box) Box {
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.W, b.Y+b.H
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	if y1 > s.Height() {
		y1 = s.Height()
	}
	return NewBox(x0, y0, x1-x0, y1-y0)
}

// Full returns a Box spanning the entire current screen.
func (s *Screen) Full() Box {
	return Box{X: 0, Y: 0, W: s.width, H: s.Height()}
}
