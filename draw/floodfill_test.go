package draw

import (
	"testing"

	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/pixel"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

// newFillPlane builds a square width×width pixel plane: a Screen of the
// given width with width/2 allocated rows of cells.
func newFillPlane(t *testing.T, width int) *pixel.Plane {
	t.Helper()
	s, err := screen.New(width)
	if err != nil {
		t.Fatal(err)
	}
	s.ClearRow(width/2 - 1)
	return pixel.NewPlane(s)
}

func TestFloodFillFillsConnectedRegion(t *testing.T) {
	p := newFillPlane(t, 4)
	// A 4x4 pixel plane (2 rows of cells), all default background.
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			p.Plot(x, y, pixel.DefaultBg)
		}
	}
	red := color.RGB{255, 0, 0}
	FloodFill(p, 0, 0, red)

	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			if got := p.Get(x, y); got != red {
				t.Errorf("(%d,%d): got %+v, want %+v", x, y, got, red)
			}
		}
	}
}

func TestFloodFillRespectsBoundary(t *testing.T) {
	p := newFillPlane(t, 4)
	blue := color.RGB{0, 0, 255}
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			p.Plot(x, y, pixel.DefaultBg)
		}
	}
	// Draw a vertical wall of blue down column 2 to split the plane.
	for y := 0; y < p.Height(); y++ {
		p.Plot(2, y, blue)
	}

	red := color.RGB{255, 0, 0}
	FloodFill(p, 0, 0, red)

	if got := p.Get(1, 0); got != red {
		t.Errorf("left side should be filled: got %+v", got)
	}
	if got := p.Get(2, 0); got != blue {
		t.Errorf("wall should be untouched: got %+v", got)
	}
	if got := p.Get(3, 0); got == red {
		t.Errorf("right side should not be filled across the wall")
	}
}

func TestFloodFillNoOpWhenSeedAlreadyTargetColor(t *testing.T) {
	p := newFillPlane(t, 2)
	green := color.RGB{0, 255, 0}
	p.Plot(0, 0, green)
	p.Plot(1, 0, color.RGB{9, 9, 9})

	FloodFill(p, 0, 0, green)

	if got := p.Get(1, 0); got != (color.RGB{9, 9, 9}) {
		t.Errorf("no-op fill should not touch other pixels: got %+v", got)
	}
}
